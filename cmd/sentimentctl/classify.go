package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiment-api/internal/clients"
)

var classifyCmd = &cobra.Command{
	Use:   "classify TEXT...",
	Short: "Classify text with the running API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := clients.NewSentimentAPIClient(apiURL, apiTimeout)
		resp, err := client.Classify(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			var apiErr *clients.APIError
			if errors.As(err, &apiErr) {
				failColor.Fprintf(cmd.ErrOrStderr(), "error %d: %s\n", apiErr.StatusCode, apiErr.Detail)
			}
			return err
		}
		printResult(cmd.OutOrStdout(), resp.Label, resp.Score)
		return nil
	},
}
