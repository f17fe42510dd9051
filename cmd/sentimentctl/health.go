package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiment-api/internal/clients"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the API is up",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := clients.NewSentimentAPIClient(apiURL, apiTimeout)
		resp, err := client.Health(cmd.Context())
		if err != nil {
			failColor.Fprintf(cmd.ErrOrStderr(), "health check failed: %v\n", err)
			return err
		}
		okColor.Fprint(cmd.OutOrStdout(), "ok")
		fmt.Fprintf(cmd.OutOrStdout(), " %s (%s)\n", resp.Service, resp.Status)
		return nil
	},
}
