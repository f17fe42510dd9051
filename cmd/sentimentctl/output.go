package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

var (
	okColor      = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
	positiveText = color.New(color.FgGreen)
	negativeText = color.New(color.FgRed)
	neutralText  = color.New(color.FgCyan)
)

func labelColor(label string) *color.Color {
	switch sentiment.Label(label) {
	case sentiment.Positive:
		return positiveText
	case sentiment.Negative:
		return negativeText
	default:
		return neutralText
	}
}

func printResult(w io.Writer, label string, score float64) {
	fmt.Fprintf(w, "label: %s\nscore: %.3f\n", labelColor(label).Sprint(label), score)
}

// preview shortens text to n runes for one-line output.
func preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}
