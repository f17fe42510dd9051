package sentiment

import "math"

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

const (
	PositiveThreshold = 0.6
	NegativeThreshold = 0.4
	NeutralScore      = 0.5
)

// scorePrecision keeps accumulated float error out of the thresholds and the
// JSON output (0.7 rather than 0.7000000000000001).
const scorePrecision = 1e4

// Result is a classification: a score in [0, 1] and its label.
type Result struct {
	Label Label
	Score float64
}

// LabelFor maps a score to a label with the fixed thresholds.
func LabelFor(score float64) Label {
	switch {
	case score > PositiveThreshold:
		return Positive
	case score < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// ParseLabel reports whether s is one of the three labels, lower-case.
func ParseLabel(s string) (Label, bool) {
	switch l := Label(s); l {
	case Positive, Negative, Neutral:
		return l, true
	}
	return "", false
}

// NewResult clamps and rounds score and derives the label from it, so the
// label never disagrees with the thresholds.
func NewResult(score float64) Result {
	s := normalizeScore(score)
	return Result{Label: LabelFor(s), Score: s}
}

func normalizeScore(score float64) float64 {
	if math.IsNaN(score) {
		return NeutralScore
	}
	return math.Round(clamp(score)*scorePrecision) / scorePrecision
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(1, score))
}
