package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "sentimentctl",
	Short:         "Talk to the review sentiment API",
	Long:          `sentimentctl checks and exercises a running sentiment-api, or scores text locally with the built-in lexicons.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", envOr("SENTIMENT_API_URL", "http://localhost:8000"), "base URL of the sentiment API")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 5*time.Second, "HTTP timeout per request")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(smokeCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
