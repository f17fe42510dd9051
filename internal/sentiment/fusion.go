package sentiment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// LabelPolicy decides where the label of an oracle answer comes from.
type LabelPolicy string

const (
	// LabelFromScore re-derives the label from the normalized score.
	LabelFromScore LabelPolicy = "score"
	// LabelFromOracle keeps the label the oracle stated.
	LabelFromOracle LabelPolicy = "oracle"
)

const DefaultOracleTimeout = 5 * time.Second

// FusionPolicy prefers the oracle's judgement and degrades to FallbackScore
// whenever the oracle cannot be reached or answers with something unusable.
type FusionPolicy struct {
	oracle  Oracle
	timeout time.Duration
	labels  LabelPolicy
	healthy *atomic.Bool
}

type FusionOption func(*FusionPolicy)

// WithTimeout bounds each oracle call.
func WithTimeout(d time.Duration) FusionOption {
	return func(p *FusionPolicy) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func WithLabelPolicy(policy LabelPolicy) FusionOption {
	return func(p *FusionPolicy) {
		p.labels = policy
	}
}

// WithHealthGate skips the oracle while healthy reports false.
func WithHealthGate(healthy *atomic.Bool) FusionOption {
	return func(p *FusionPolicy) {
		p.healthy = healthy
	}
}

// NewFusionPolicy builds the policy. A nil oracle means no credential was
// configured, and every classification fails with ErrConfiguration.
func NewFusionPolicy(oracle Oracle, opts ...FusionOption) *FusionPolicy {
	p := &FusionPolicy{
		oracle:  oracle,
		timeout: DefaultOracleTimeout,
		labels:  LabelFromScore,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Classify returns ErrInvalidInput or ErrConfiguration; any other failure is
// absorbed into the fallback result.
func (p *FusionPolicy) Classify(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Result{}, ErrInvalidInput
	}
	if p.oracle == nil {
		return Result{}, ErrConfiguration
	}

	if p.healthy != nil && !p.healthy.Load() {
		slog.Warn("[FusionPolicy] Oracle marked unhealthy, using fallback")
		return FallbackScore(text), nil
	}

	classification, err := p.consult(ctx, text)
	if err != nil {
		slog.Warn("[FusionPolicy] Oracle unusable, using fallback",
			slog.String("kind", failureKind(err)),
			slog.String("error", err.Error()))
		return FallbackScore(text), nil
	}

	result := classification.Normalize(p.labels)
	slog.Debug("[FusionPolicy] Oracle classification",
		slog.String("oracle_label", classification.Label),
		slog.Float64("oracle_score", classification.Score),
		slog.String("label", string(result.Label)),
		slog.Float64("score", result.Score))
	return result, nil
}

func (p *FusionPolicy) consult(ctx context.Context, text string) (ExternalClassification, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	raw, err := p.oracle.Complete(ctx, BuildPrompt(text))
	if err != nil {
		return ExternalClassification{}, fmt.Errorf("%w after %s: %w", ErrOracleTransport, time.Since(start).Round(time.Millisecond), err)
	}

	classification, err := ParseExternalClassification(raw)
	if err != nil {
		slog.Debug("[FusionPolicy] Rejected oracle response", getPreview(raw))
		return ExternalClassification{}, err
	}
	return classification, nil
}

func getPreview(raw string) slog.Attr {
	if len(raw) > 100 {
		raw = raw[:100] + "..."
	}
	return slog.String("raw_response", raw)
}
