package sentiment

import (
	"strings"

	"github.com/spacesedan/sentiment-api/internal/lexicon"
)

// Indicator terms for the fallback heuristic. Deliberately much smaller than
// the scoring lexicon.
var (
	fallbackPositive = []string{"bom", "ótimo", "excelente", "gostei", "recomendo", "perfeito", "adorei"}
	fallbackNegative = []string{"ruim", "péssimo", "horrível", "não gostei", "não recomendo", "quebrado", "defeito"}
)

const (
	fallbackPositiveScore = 0.7
	fallbackNegativeScore = 0.3
)

// FallbackScore is the coarse heuristic used when the oracle is unusable: it
// counts which indicators appear at all and lets the majority decide. Ties,
// including no hits, are neutral.
func FallbackScore(text string) Result {
	normalized := lexicon.Normalize(text)
	pos := countIndicators(normalized, fallbackPositive)
	neg := countIndicators(normalized, fallbackNegative)

	switch {
	case pos > neg:
		return NewResult(fallbackPositiveScore)
	case neg > pos:
		return NewResult(fallbackNegativeScore)
	default:
		return NewResult(NeutralScore)
	}
}

func countIndicators(text string, indicators []string) int {
	hits := 0
	for _, w := range indicators {
		if strings.Contains(text, w) {
			hits++
		}
	}
	return hits
}
