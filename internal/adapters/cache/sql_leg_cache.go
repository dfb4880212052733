package cache

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLLegCache is a postgres-backed cache of great-circle legs.
type SQLLegCache struct {
	DB *sql.DB
}

func NewSQLLegCache(db *sql.DB) *SQLLegCache {
	return &SQLLegCache{DB: db}
}

// Fetch cached legs for the given keys.
func (s *SQLLegCache) GetMany(ctx context.Context, keys []string) (_ map[string]domain.Leg, err error) {
	defer obs.Time(ctx, "leg.cache.sql.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("leg cache: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Leg{}, nil
	}

	q := `
	SELECT from_key, to_key, distance_km
    FROM leg_distances
    WHERE from_key || '|' || to_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get leg cache: query leg_distances table: %w", err)
	}
	defer rows.Close()

	return scanLegs(rows, len(uniq))
}

// Store legs in the cache.
func (s *SQLLegCache) PutMany(ctx context.Context, legs []domain.Leg) error {
	if s.DB == nil {
		return errors.New("leg cache: db is nil")
	}

	if len(legs) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert leg cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO leg_distances (from_key, to_key, distance_km)
    VALUES ($1, $2, $3)
	ON CONFLICT (from_key, to_key) DO UPDATE
	SET distance_km = EXCLUDED.distance_km;
	`)
	if err != nil {
		return fmt.Errorf("insert leg cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, l := range legs {
		if err := validateLeg(l); err != nil {
			return fmt.Errorf("insert leg cache: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, domain.EndpointKey(l.FromID, l.From), domain.EndpointKey(l.ToID, l.To), l.DistanceKm); err != nil {
			return fmt.Errorf("insert leg cache leg=%q: %w", l.Key(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert leg cache commit: %w", err)
	}

	return nil
}
