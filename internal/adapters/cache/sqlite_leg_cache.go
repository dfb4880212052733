package cache

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLite backed cache of great-circle legs keyed by domain.LegKey.
// Rows are stored per located endpoint, so a moved milestone never hits.
type SqliteLegCache struct {
	DB *sql.DB
}

func NewSqliteLegCache(db *sql.DB) *SqliteLegCache {
	return &SqliteLegCache{DB: db}
}

// Fetch cached legs for the given keys.
func (s *SqliteLegCache) GetMany(ctx context.Context, keys []string) (_ map[string]domain.Leg, err error) {
	defer obs.Time(ctx, "leg.cache.sqlite.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("leg cache: db is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Leg{}, nil
	}

	ph := make([]string, 0, len(uniq))
	args := make([]any, 0, len(uniq))
	for _, k := range uniq {
		ph = append(ph, "?")
		args = append(args, k)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
        from_key,
        to_key,
        distance_km
    FROM leg_distances
    WHERE from_key || '|' || to_key IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get leg cache: query leg_distances table: %w", err)
	}
	defer rows.Close()

	return scanLegs(rows, len(uniq))
}

// Store legs, replacing existing rows for the same pair.
func (s *SqliteLegCache) PutMany(ctx context.Context, legs []domain.Leg) error {
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
	INSERT OR REPLACE INTO leg_distances (
        from_key,
        to_key,
        distance_km
    )
    VALUES (?, ?, ?)
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

func scanLegs(rows *sql.Rows, capHint int) (map[string]domain.Leg, error) {
	out := make(map[string]domain.Leg, capHint)
	for rows.Next() {
		var fromKey, toKey string
		var km float64
		if err := rows.Scan(&fromKey, &toKey, &km); err != nil {
			return nil, fmt.Errorf("get leg cache: scan rows: %w", err)
		}

		l, err := domain.ParseLegKey(fromKey + "|" + toKey)
		if err != nil {
			return nil, fmt.Errorf("get leg cache: %w", err)
		}
		l.DistanceKm = km
		out[l.Key()] = l
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get leg cache: row iteration: %w", err)
	}
	return out, nil
}
