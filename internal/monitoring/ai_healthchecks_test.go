package monitoring

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type stubPinger struct {
	err   error
	calls atomic.Int32
}

func (s *stubPinger) Ping(ctx context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestCheckOracleHealth(t *testing.T) {
	healthy := &atomic.Bool{}
	healthy.Store(true)

	checkOracleHealth(context.Background(), &stubPinger{err: errors.New("503")}, healthy)
	if healthy.Load() {
		t.Fatal("expected unhealthy after failed ping")
	}

	checkOracleHealth(context.Background(), &stubPinger{}, healthy)
	if !healthy.Load() {
		t.Fatal("expected healthy after successful ping")
	}
}

func TestMonitorOracleHealth_InvalidSchedule(t *testing.T) {
	err := MonitorOracleHealth(context.Background(), "every now and then", &stubPinger{}, &atomic.Bool{})
	if err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}

func TestMonitorOracleHealth_RunsUntilCancelled(t *testing.T) {
	pinger := &stubPinger{err: errors.New("down")}
	healthy := &atomic.Bool{}
	healthy.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- MonitorOracleHealth(ctx, "@every 1s", pinger, healthy)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for pinger.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}

	if pinger.calls.Load() == 0 {
		t.Fatal("monitor never probed the oracle")
	}
	if healthy.Load() {
		t.Error("expected unhealthy after failed probes")
	}
}
