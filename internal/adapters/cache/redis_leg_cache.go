package cache

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const defaultLegHash = "globe:legs"

// RedisLegCache stores legs as fields of a single Redis hash:
// field = domain.LegKey (ids plus coordinates), value = distance in km.
type RedisLegCache struct {
	client *redis.Client
	hash   string
}

func NewRedisLegCache(client *redis.Client) *RedisLegCache {
	return &RedisLegCache{client: client, hash: defaultLegHash}
}

func (r *RedisLegCache) GetMany(ctx context.Context, keys []string) (_ map[string]domain.Leg, err error) {
	defer obs.Time(ctx, "leg.cache.redis.GetMany")(&err)

	if r.client == nil {
		return nil, errors.New("leg cache: redis client is nil")
	}

	uniq := uniqueKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Leg{}, nil
	}

	vals, err := r.client.HMGet(ctx, r.hash, uniq...).Result()
	if err != nil {
		return nil, fmt.Errorf("get leg cache: hmget %s: %w", r.hash, err)
	}

	out := make(map[string]domain.Leg, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}

		km, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("get leg cache: parse %q: %w", uniq[i], err)
		}
		l, err := domain.ParseLegKey(uniq[i])
		if err != nil {
			continue
		}
		l.DistanceKm = km
		out[uniq[i]] = l
	}

	return out, nil
}

func (r *RedisLegCache) PutMany(ctx context.Context, legs []domain.Leg) error {
	if r.client == nil {
		return errors.New("leg cache: redis client is nil")
	}

	if len(legs) == 0 {
		return nil
	}

	fields := make(map[string]any, len(legs))
	for _, l := range legs {
		if err := validateLeg(l); err != nil {
			return fmt.Errorf("insert leg cache: %w", err)
		}
		fields[l.Key()] = strconv.FormatFloat(l.DistanceKm, 'g', -1, 64)
	}

	if err := r.client.HSet(ctx, r.hash, fields).Err(); err != nil {
		return fmt.Errorf("insert leg cache: hset %s: %w", r.hash, err)
	}

	return nil
}
