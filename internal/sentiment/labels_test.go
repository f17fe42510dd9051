package sentiment

import (
	"math"
	"testing"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{0.0, Negative},
		{0.39, Negative},
		{0.4, Neutral},
		{0.5, Neutral},
		{0.6, Neutral},
		{0.61, Positive},
		{1.0, Positive},
	}
	for _, tt := range tests {
		if got := LabelFor(tt.score); got != tt.want {
			t.Errorf("LabelFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNewResult(t *testing.T) {
	tests := []struct {
		in    float64
		score float64
		label Label
	}{
		{1.7, 1.0, Positive},
		{-0.2, 0.0, Negative},
		{0.5 + 0.1, 0.6, Neutral},
		{0.6 + 0.1, 0.7, Positive},
		{math.NaN(), 0.5, Neutral},
	}
	for _, tt := range tests {
		got := NewResult(tt.in)
		if got.Score != tt.score || got.Label != tt.label {
			t.Errorf("NewResult(%v) = %+v, want {%s %v}", tt.in, got, tt.label, tt.score)
		}
	}
}

func TestParseLabel(t *testing.T) {
	for _, s := range []string{"positive", "negative", "neutral"} {
		if l, ok := ParseLabel(s); !ok || string(l) != s {
			t.Errorf("ParseLabel(%q) = %q, %v", s, l, ok)
		}
	}
	for _, s := range []string{"", "Positive", "mixed"} {
		if _, ok := ParseLabel(s); ok {
			t.Errorf("ParseLabel(%q) should fail", s)
		}
	}
}
