package sentiment

import (
	"context"
	"strings"

	"github.com/spacesedan/sentiment-api/internal/lexicon"
)

// LexiconScorer scores text against a weighted lexicon. It is a pure function
// of its input and the lexicon, and never fails.
type LexiconScorer struct {
	lex *lexicon.Lexicon
}

func NewLexiconScorer(lex *lexicon.Lexicon) *LexiconScorer {
	return &LexiconScorer{lex: lex}
}

// Score starts from the neutral baseline and moves by weight × occurrences for
// every entry found in the lower-cased text. Matching is plain substring
// counting: "bom" is found twice in "bombom".
func (s *LexiconScorer) Score(text string) Result {
	normalized := lexicon.Normalize(text)

	score := NeutralScore
	if normalized == "" {
		return NewResult(score)
	}
	for entry := range s.lex.All() {
		n := countOccurrences(normalized, entry.Term)
		if n == 0 {
			continue
		}
		score += float64(entry.Polarity) * entry.Weight * float64(n)
	}
	return NewResult(score)
}

// countOccurrences counts overlapping matches of term in text.
func countOccurrences(text, term string) int {
	if term == "" {
		return 0
	}
	n := 0
	for i := 0; ; {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return n
		}
		n++
		i += j + 1
	}
}

// LexiconClassifier serves a LexiconScorer behind the Classifier interface.
type LexiconClassifier struct {
	scorer *LexiconScorer
}

func NewLexiconClassifier(lex *lexicon.Lexicon) *LexiconClassifier {
	return &LexiconClassifier{scorer: NewLexiconScorer(lex)}
}

// Classify rejects blank text like the oracle path does, then scores it.
func (c *LexiconClassifier) Classify(_ context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrInvalidInput
	}
	return c.scorer.Score(text), nil
}
