package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// Oracle is an external text-generation service. Complete sends one prompt
// and returns the raw model output.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ExternalClassification is a validated oracle answer. Score is in [-1, 1]
// as stated by the oracle; it is rescaled by Normalize.
type ExternalClassification struct {
	Label string
	Score float64
}

type oraclePayload struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

// ParseExternalClassification strips any Markdown fence around raw and decodes
// the JSON object inside. Every failure wraps ErrOracleFormat.
func ParseExternalClassification(raw string) (ExternalClassification, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return ExternalClassification{}, fmt.Errorf("%w: empty response", ErrOracleFormat)
	}

	var payload oraclePayload
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&payload); err != nil {
		return ExternalClassification{}, fmt.Errorf("%w: %w", ErrOracleFormat, err)
	}
	if dec.More() {
		return ExternalClassification{}, fmt.Errorf("%w: trailing data after JSON object", ErrOracleFormat)
	}
	if payload.Label == nil {
		return ExternalClassification{}, fmt.Errorf("%w: missing label", ErrOracleFormat)
	}
	if payload.Score == nil {
		return ExternalClassification{}, fmt.Errorf("%w: missing score", ErrOracleFormat)
	}

	return ExternalClassification{Label: *payload.Label, Score: *payload.Score}, nil
}

// Normalize maps the oracle's [-1, 1] score onto [0, 1]. Unknown labels become
// neutral. With LabelFromScore the stated label is replaced by the threshold
// label of the mapped score.
func (c ExternalClassification) Normalize(policy LabelPolicy) Result {
	mapped := (c.Score + 1) / 2
	if policy != LabelFromOracle {
		return NewResult(mapped)
	}

	label, ok := ParseLabel(strings.ToLower(strings.TrimSpace(c.Label)))
	if !ok {
		label = Neutral
	}
	return Result{Label: label, Score: normalizeScore(mapped)}
}

// stripCodeFence returns the contents of the first fenced code block in raw,
// or raw itself when there is none. Single-line fences (```json {...}```)
// are not blocks in Markdown and are trimmed by hand.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.Contains(cleaned, "```") {
		return cleaned
	}

	md := blackfriday.New(blackfriday.WithExtensions(blackfriday.FencedCode))
	root := md.Parse([]byte(cleaned))

	var literal []byte
	found := false
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if entering && node.Type == blackfriday.CodeBlock && node.IsFenced {
			literal = node.Literal
			found = true
			return blackfriday.Terminate
		}
		return blackfriday.GoToNext
	})
	if found {
		// an unterminated fence runs to the end of the document
		return strings.TrimSpace(strings.TrimSuffix(string(bytes.TrimSpace(literal)), "```"))
	}

	cleaned = strings.TrimPrefix(cleaned, "```")
	if len(cleaned) >= 4 && strings.EqualFold(cleaned[:4], "json") {
		cleaned = cleaned[4:]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
