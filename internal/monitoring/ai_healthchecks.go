package monitoring

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

const HEALTHCHECK_TIMEOUT = 5 * time.Second

// Pinger is anything that can cheaply prove the oracle is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// MonitorOracleHealth probes the oracle on schedule (a cron spec such as
// "@every 30s") and stores the outcome in healthy until ctx is done.
func MonitorOracleHealth(ctx context.Context, schedule string, oracle Pinger, healthy *atomic.Bool) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		checkOracleHealth(ctx, oracle, healthy)
	}); err != nil {
		return fmt.Errorf("invalid health check schedule %q: %w", schedule, err)
	}

	slog.Info("[HealthCheck] Oracle monitor started", slog.String("schedule", schedule))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("[HealthCheck] Oracle monitor stopped")
	return nil
}

func checkOracleHealth(ctx context.Context, oracle Pinger, healthy *atomic.Bool) {
	ctx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
	defer cancel()

	err := oracle.Ping(ctx)
	isHealthy := err == nil
	wasHealthy := healthy.Swap(isHealthy)

	switch {
	case !isHealthy:
		slog.Warn("[HealthCheck] Oracle is unhealthy", slog.String("error", err.Error()))
	case !wasHealthy:
		slog.Info("[HealthCheck] Oracle recovered")
	}
}
