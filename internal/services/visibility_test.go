package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestVisibilityActionsRunOncePerTransition(t *testing.T) {
	var starts, stops int
	v := NewVisibility(
		func(context.Context) error { starts++; return nil },
		func(context.Context) error { stops++; return nil },
	)
	ctx := context.Background()

	if v.State() != Idle {
		t.Fatalf("initial state = %q, want idle", v.State())
	}

	steps := []bool{false, true, true, false, false, true}
	for _, visible := range steps {
		if err := v.SetVisible(ctx, visible); err != nil {
			t.Fatalf("SetVisible(%v): %v", visible, err)
		}
	}

	if starts != 2 || stops != 1 {
		t.Fatalf("starts = %d stops = %d, want 2/1", starts, stops)
	}
	if v.State() != Visible {
		t.Fatalf("final state = %q, want visible", v.State())
	}
}

func TestHashTickerStartsAndStops(t *testing.T) {
	var emitted atomic.Int64
	ticker := NewHashTicker(time.Millisecond, 1, func(string) { emitted.Add(1) })
	ctx := context.Background()

	if err := ticker.SetVisible(ctx, true); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !ticker.Running() {
		t.Fatalf("ticker should run while visible")
	}

	deadline := time.Now().Add(2 * time.Second)
	for emitted.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if emitted.Load() == 0 {
		t.Fatalf("no hash emitted while visible")
	}

	if err := ticker.SetVisible(ctx, false); err != nil {
		t.Fatalf("hide: %v", err)
	}
	if ticker.Running() {
		t.Fatalf("ticker should stop when hidden")
	}

	after := emitted.Load()
	time.Sleep(10 * time.Millisecond)
	if emitted.Load() != after {
		t.Fatalf("hash emitted after hide")
	}
}
