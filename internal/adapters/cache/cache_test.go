package cache

import (
	"career-globe-service/internal/adapters/repositories"
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/platform/db"
	"career-globe-service/internal/platform/metrics"
	"career-globe-service/internal/ports"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSqliteCache(t *testing.T) *SqliteLegCache {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, repositories.InitSchema(conn, repositories.SQLite))
	return NewSqliteLegCache(conn)
}

func newRedisCache(t *testing.T) *RedisLegCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLegCache(client)
}

var (
	paris  = geo.Coordinate{Lat: 48.8566, Lng: 2.3522}
	berlin = geo.Coordinate{Lat: 52.52, Lng: 13.405}
	rennes = geo.Coordinate{Lat: 48.1173, Lng: -1.6778}
	sydney = geo.Coordinate{Lat: -33.8688, Lng: 151.2093}
)

func exerciseLegCache(t *testing.T, c ports.LegCache) {
	ctx := context.Background()

	empty, err := c.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	legs := []domain.Leg{
		{FromID: "paris", ToID: "berlin", From: paris, To: berlin, DistanceKm: 877.46},
		{FromID: "berlin", ToID: "rennes", From: berlin, To: rennes, DistanceKm: 1162.5},
	}
	require.NoError(t, c.PutMany(ctx, legs))

	parisBerlin := legs[0].Key()
	got, err := c.GetMany(ctx, []string{
		parisBerlin, parisBerlin, " ", legs[1].Key(),
		domain.LegKey("rennes", rennes, "paris", paris),
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, legs[0], got[parisBerlin])
	assert.InDelta(t, 1162.5, got[legs[1].Key()].DistanceKm, 1e-9)

	// Same ids, moved endpoint: a different entry, not a stale hit.
	moved := domain.LegKey("paris", paris, "berlin", sydney)
	got, err = c.GetMany(ctx, []string{moved})
	require.NoError(t, err)
	assert.Empty(t, got)

	// Upsert replaces the stored distance.
	require.NoError(t, c.PutMany(ctx, []domain.Leg{{FromID: "paris", ToID: "berlin", From: paris, To: berlin, DistanceKm: 1}}))
	got, err = c.GetMany(ctx, []string{parisBerlin})
	require.NoError(t, err)
	assert.Equal(t, 1.0, got[parisBerlin].DistanceKm)

	assert.Error(t, c.PutMany(ctx, []domain.Leg{{FromID: "", ToID: "x"}}))
	assert.Error(t, c.PutMany(ctx, []domain.Leg{{FromID: "a|b", ToID: "x"}}))
}

func TestSqliteLegCache(t *testing.T) {
	exerciseLegCache(t, newSqliteCache(t))
}

func TestRedisLegCache(t *testing.T) {
	exerciseLegCache(t, newRedisCache(t))
}

func TestNilBackends(t *testing.T) {
	ctx := context.Background()

	key := domain.LegKey("a", paris, "b", berlin)

	_, err := (&SqliteLegCache{}).GetMany(ctx, []string{key})
	assert.Error(t, err)
	_, err = (&SQLLegCache{}).GetMany(ctx, []string{key})
	assert.Error(t, err)
	_, err = (&RedisLegCache{}).GetMany(ctx, []string{key})
	assert.Error(t, err)
}

func TestInstrumentedCountsHitsAndMisses(t *testing.T) {
	m := metrics.New()
	c := NewInstrumented(newRedisCache(t), "redis", m)
	ctx := context.Background()

	hit := domain.Leg{FromID: "a", ToID: "b", From: paris, To: berlin, DistanceKm: 3}
	require.NoError(t, c.PutMany(ctx, []domain.Leg{hit}))
	_, err := c.GetMany(ctx, []string{
		hit.Key(),
		domain.LegKey("b", berlin, "c", rennes),
		domain.LegKey("c", rennes, "d", sydney),
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("redis")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheMisses.WithLabelValues("redis")))
}
