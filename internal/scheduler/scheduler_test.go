package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestAddIntervalJobValidation(t *testing.T) {
	svc, err := New(zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = svc.Stop()
	})

	if _, err := svc.AddIntervalJob("  ", time.Second, func() {}); !errors.Is(err, ErrEmptyJobName) {
		t.Fatalf("AddIntervalJob(blank name) error = %v, want ErrEmptyJobName", err)
	}
	if _, err := svc.AddIntervalJob("watchdog", 0, func() {}); !errors.Is(err, ErrInvalidInterval) {
		t.Fatalf("AddIntervalJob(0) error = %v, want ErrInvalidInterval", err)
	}

	var nilService *Service
	if _, err := nilService.AddIntervalJob("watchdog", time.Second, func() {}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("nil AddIntervalJob() error = %v, want ErrNotInitialized", err)
	}
	if err := nilService.Stop(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("nil Stop() error = %v, want ErrNotInitialized", err)
	}
}

func TestIntervalJobRuns(t *testing.T) {
	svc, err := New(zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var runs atomic.Int32
	if _, err := svc.AddIntervalJob("counter", 20*time.Millisecond, func() {
		runs.Add(1)
	}); err != nil {
		t.Fatalf("AddIntervalJob() error = %v", err)
	}
	svc.Start()

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if runs.Load() == 0 {
		t.Fatalf("interval job never ran")
	}
	if err := svc.Stop(); err != nil {
		t.Fatalf("second Stop() error = %v", err)
	}
}
