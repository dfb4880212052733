package ports

import (
	"career-globe-service/internal/domain"
	"context"
)

// Contract for caching great-circle legs between milestone pairs.
type LegCache interface {
	// Return cached legs keyed by domain.LegKey. Missing or moved pairs are simply absent.
	GetMany(ctx context.Context, keys []string) (map[string]domain.Leg, error)
	// Store legs, replacing existing entries for the same pair.
	PutMany(ctx context.Context, legs []domain.Leg) error
}
