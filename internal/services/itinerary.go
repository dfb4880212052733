package services

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/platform/obs"
	"career-globe-service/internal/ports"
	"context"
	"fmt"
	"log/slog"
)

// BuildItinerary computes the great-circle legs between consecutive milestones.
//
// Known legs are read from the cache first; missing ones are computed and
// written back. Cache keys include both endpoints' coordinates, so legs of a
// moved milestone are recomputed. A cache failure is logged and the legs are computed anyway,
// since every leg can be derived from the milestone coordinates alone.
func BuildItinerary(
	ctx context.Context,
	repo ports.MilestoneRepository,
	cache ports.LegCache,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "itinerary.Build")(&err)

	ms, err := repo.ListMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: list milestones: %w", err)
	}

	if len(ms) < 2 {
		return &domain.Itinerary{Legs: []domain.Leg{}}, nil
	}

	keys := make([]string, 0, len(ms)-1)
	for i := 0; i+1 < len(ms); i++ {
		keys = append(keys, domain.LegKey(ms[i].ID, ms[i].Coordinates, ms[i+1].ID, ms[i+1].Coordinates))
	}

	cached := map[string]domain.Leg{}
	if cache != nil {
		got, cerr := cache.GetMany(ctx, keys)
		if cerr != nil {
			slog.WarnContext(ctx, "leg cache read failed", "err", cerr)
		} else {
			cached = got
		}
	}

	legs := make([]domain.Leg, 0, len(keys))
	missing := []domain.Leg{}
	total := 0.0

	for i := 0; i+1 < len(ms); i++ {
		from, to := ms[i], ms[i+1]

		leg, ok := cached[keys[i]]
		if !ok {
			d, derr := geo.GreatCircleDistance(from.Coordinates, to.Coordinates, geo.EarthRadiusKm)
			if derr != nil {
				return nil, fmt.Errorf("build itinerary: leg %q -> %q: %w", from.ID, to.ID, derr)
			}
			leg = domain.Leg{
				FromID:     from.ID,
				ToID:       to.ID,
				From:       from.Coordinates,
				To:         to.Coordinates,
				DistanceKm: d,
			}
			missing = append(missing, leg)
		}

		legs = append(legs, leg)
		total += leg.DistanceKm
	}

	if cache != nil && len(missing) > 0 {
		if cerr := cache.PutMany(ctx, missing); cerr != nil {
			slog.WarnContext(ctx, "leg cache write failed", "err", cerr, "legs", len(missing))
		}
	}

	return &domain.Itinerary{Legs: legs, TotalKm: total}, nil
}
