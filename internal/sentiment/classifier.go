package sentiment

import "context"

// Classifier is a sentiment backend the HTTP API can serve.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

var (
	_ Classifier = (*LexiconClassifier)(nil)
	_ Classifier = (*FusionPolicy)(nil)
)
