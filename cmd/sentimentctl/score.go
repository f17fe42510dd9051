package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentiment-api/internal/lexicon"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

var (
	scoreLexicon  string
	scoreFallback bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreLexicon, "lexicon", lexicon.Expanded, "built-in lexicon (basic|expanded) or path to a YAML lexicon")
	scoreCmd.Flags().BoolVar(&scoreFallback, "fallback", false, "use the coarse oracle fallback heuristic instead of the lexicon")
}

var scoreCmd = &cobra.Command{
	Use:   "score TEXT...",
	Short: "Score text locally without calling the API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		if scoreFallback {
			r := sentiment.FallbackScore(text)
			printResult(cmd.OutOrStdout(), string(r.Label), r.Score)
			return nil
		}

		lex, err := loadLexicon(scoreLexicon)
		if err != nil {
			return err
		}
		r := sentiment.NewLexiconScorer(lex).Score(text)
		printResult(cmd.OutOrStdout(), string(r.Label), r.Score)
		return nil
	},
}

func loadLexicon(name string) (*lexicon.Lexicon, error) {
	switch name {
	case lexicon.Basic, lexicon.Expanded:
		return lexicon.Builtin(name)
	}
	lex, err := lexicon.LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("--lexicon %q is neither a built-in lexicon nor a readable file: %w", name, err)
	}
	return lex, nil
}
