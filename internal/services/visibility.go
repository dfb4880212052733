package services

import (
	"career-globe-service/internal/platform/fsm"
	"context"
	"math/rand"
	"sync"
	"time"
)

type VisibilityState string

const (
	Idle    VisibilityState = "idle"
	Visible VisibilityState = "visible"
)

type VisibilityEvent string

const (
	Show VisibilityEvent = "show"
	Hide VisibilityEvent = "hide"
)

// Visibility tracks whether a section is on screen and runs start on
// Idle -> Visible and stop on Visible -> Idle. Repeating an event in the
// state it already produced does nothing.
type Visibility struct {
	m *fsm.Machine[VisibilityState, VisibilityEvent]
}

func NewVisibility(start, stop func(ctx context.Context) error) *Visibility {
	m := fsm.New[VisibilityState, VisibilityEvent](Idle)

	m.AddTransition(Idle, Show, Visible)
	m.AddTransition(Idle, Hide, Idle)
	m.AddTransition(Visible, Hide, Idle)
	m.AddTransition(Visible, Show, Visible)

	if start != nil {
		m.OnTransition(Idle, Visible, func(ctx context.Context, _, _ VisibilityState) error { return start(ctx) })
	}
	if stop != nil {
		m.OnTransition(Visible, Idle, func(ctx context.Context, _, _ VisibilityState) error { return stop(ctx) })
	}

	return &Visibility{m: m}
}

func (v *Visibility) State() VisibilityState { return v.m.Current() }

// SetVisible feeds a visibility change into the machine.
func (v *Visibility) SetVisible(ctx context.Context, visible bool) error {
	if visible {
		return v.m.Fire(ctx, Show)
	}
	return v.m.Fire(ctx, Hide)
}

// HashTicker scrambles an unconfirmed block hash at a fixed interval while
// its block is visible.
type HashTicker struct {
	interval time.Duration
	emit     func(hash string)
	rng      *rand.Rand

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	vis *Visibility
}

func NewHashTicker(interval time.Duration, seed int64, emit func(hash string)) *HashTicker {
	t := &HashTicker{
		interval: interval,
		emit:     emit,
		rng:      rand.New(rand.NewSource(seed)),
	}
	t.vis = NewVisibility(t.start, t.stop)
	return t
}

func (t *HashTicker) SetVisible(ctx context.Context, visible bool) error {
	return t.vis.SetVisible(ctx, visible)
}

func (t *HashTicker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

func (t *HashTicker) start(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	t.cancel, t.done = cancel, done

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.emit(ScrambleHash(t.rng))
			}
		}
	}()

	return nil
}

// stop cancels the loop and waits for it so no emit happens after Hide returns.
func (t *HashTicker) stop(context.Context) error {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	return nil
}
