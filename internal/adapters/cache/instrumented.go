package cache

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/platform/metrics"
	"career-globe-service/internal/ports"
	"context"
)

// Instrumented counts hits and misses of a wrapped LegCache.
type Instrumented struct {
	next    ports.LegCache
	backend string
	m       *metrics.Metrics
}

func NewInstrumented(next ports.LegCache, backend string, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, backend: backend, m: m}
}

func (c *Instrumented) GetMany(ctx context.Context, keys []string) (map[string]domain.Leg, error) {
	out, err := c.next.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}

	hits := len(out)
	misses := len(uniqueKeys(keys)) - hits
	c.m.CacheHits.WithLabelValues(c.backend).Add(float64(hits))
	if misses > 0 {
		c.m.CacheMisses.WithLabelValues(c.backend).Add(float64(misses))
	}

	return out, nil
}

func (c *Instrumented) PutMany(ctx context.Context, legs []domain.Leg) error {
	return c.next.PutMany(ctx, legs)
}
