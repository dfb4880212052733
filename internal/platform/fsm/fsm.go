// Package fsm is a minimal finite state machine with per-transition actions.
package fsm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrActionFailed      = errors.New("transition action failed")
)

// Action runs when the machine moves from one state to another.
// The state only changes if the action succeeds.
type Action[S comparable] func(ctx context.Context, from, to S) error

type Machine[S comparable, E comparable] struct {
	mu          sync.Mutex
	current     S
	transitions map[S]map[E]S
	actions     map[S]map[S]Action[S]
}

func New[S comparable, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E]S),
		actions:     make(map[S]map[S]Action[S]),
	}
}

func (m *Machine[S, E]) AddTransition(from S, event E, to S) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.transitions[from]; !ok {
		m.transitions[from] = make(map[E]S)
	}
	m.transitions[from][event] = to
}

// OnTransition registers the action for from -> to. Self transitions
// without an action are no-ops.
func (m *Machine[S, E]) OnTransition(from, to S, action Action[S]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.actions[from]; !ok {
		m.actions[from] = make(map[S]Action[S])
	}
	m.actions[from][to] = action
}

func (m *Machine[S, E]) Current() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Fire applies event to the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.current
	to, ok := m.transitions[from][event]
	if !ok {
		return fmt.Errorf("%w: event %v in state %v", ErrInvalidTransition, event, from)
	}

	if action, ok := m.actions[from][to]; ok {
		if err := action(ctx, from, to); err != nil {
			return fmt.Errorf("%w (%v -> %v): %w", ErrActionFailed, from, to, err)
		}
	}

	if from != to {
		slog.DebugContext(ctx, "fsm transition", "from", from, "to", to, "event", event)
	}
	m.current = to

	return nil
}
