package main

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/spacesedan/sentiment-api/config"
	"github.com/spacesedan/sentiment-api/internal/clients"
	"github.com/spacesedan/sentiment-api/internal/lexicon"
	"github.com/spacesedan/sentiment-api/internal/sentiment"
)

// newClassifier wires the backend selected by cfg.Mode. oracle is nil when no
// credential is configured.
func newClassifier(cfg config.Config, oracle *clients.OpenAIClient, healthy *atomic.Bool) (sentiment.Classifier, error) {
	switch cfg.Mode {
	case config.ModeBasic:
		return lexiconClassifier(lexicon.Basic, "")
	case config.ModeLexicon:
		return lexiconClassifier(lexicon.Expanded, cfg.LexiconPath)
	case config.ModeOracle:
		opts := []sentiment.FusionOption{
			sentiment.WithTimeout(cfg.Oracle.Timeout),
			sentiment.WithLabelPolicy(sentiment.LabelPolicy(cfg.Oracle.LabelPolicy)),
		}
		if cfg.HealthMonitorEnabled() {
			opts = append(opts, sentiment.WithHealthGate(healthy))
		}
		// a typed nil pointer must not reach the interface
		if oracle == nil {
			return sentiment.NewFusionPolicy(nil, opts...), nil
		}
		return sentiment.NewFusionPolicy(oracle, opts...), nil
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}

func lexiconClassifier(builtin, path string) (sentiment.Classifier, error) {
	var (
		lex *lexicon.Lexicon
		err error
	)
	if path != "" {
		lex, err = lexicon.LoadFile(path)
	} else {
		lex, err = lexicon.Builtin(builtin)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("[Main] Lexicon loaded",
		slog.String("name", lex.Name),
		slog.Int("version", lex.Version),
		slog.Int("entries", lex.Len()))
	return sentiment.NewLexiconClassifier(lex), nil
}
