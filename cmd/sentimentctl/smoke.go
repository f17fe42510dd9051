package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiment-api/internal/clients"
)

type smokeCase struct {
	text     string
	expected string
}

// Reviews from the manual test script. The ironic one is aimed at the oracle;
// the lexicon modes are expected to miss it.
var smokeCases = []smokeCase{
	{"Produto excelente! Superou minhas expectativas. Recomendo muito!", "positive"},
	{"Produto péssimo, veio quebrado e não funciona. Não recomendo.", "negative"},
	{"O produto chegou no prazo. Ainda não testei todas as funcionalidades.", "neutral"},
	{"Ótimo produto... se você gosta de coisas que quebram na primeira semana.", "negative"},
	{"Gostei do produto, mas a entrega atrasou bastante. O atendimento foi bom.", "positive"},
}

var errSmokeFailed = errors.New("smoke test failed")

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Run the sample reviews against the API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		client := clients.NewSentimentAPIClient(apiURL, apiTimeout)

		if _, err := client.Health(cmd.Context()); err != nil {
			failColor.Fprintf(out, "✗ could not reach %s: %v\n", apiURL, err)
			return errSmokeFailed
		}
		okColor.Fprintf(out, "✓ health OK at %s\n", apiURL)

		failed, mismatched := 0, 0
		for _, c := range smokeCases {
			fmt.Fprintf(out, "\n%q\n", preview(c.text, 50))

			resp, err := client.Classify(cmd.Context(), c.text)
			if err != nil {
				failColor.Fprintf(out, "  ✗ %v\n", err)
				failed++
				continue
			}

			fmt.Fprintf(out, "  label: %s  score: %.3f\n", labelColor(resp.Label).Sprint(resp.Label), resp.Score)
			if resp.Label != c.expected {
				warnColor.Fprintf(out, "  ! expected %q\n", c.expected)
				mismatched++
			}
		}

		fmt.Fprintln(out)
		if failed > 0 {
			failColor.Fprintf(out, "%d of %d requests failed\n", failed, len(smokeCases))
			return errSmokeFailed
		}
		if mismatched > 0 {
			warnColor.Fprintf(out, "all requests succeeded, %d label(s) differ from expectations\n", mismatched)
			return nil
		}
		okColor.Fprintln(out, "all requests succeeded")
		return nil
	},
}
