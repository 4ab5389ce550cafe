package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dataMarket/domain"
	"dataMarket/pkg/logger"
	"dataMarket/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	keyPaidOrders = "reco:snapshot:paid_orders"
	keyCatalog    = "reco:snapshot:catalog"

	defaultLoadTimeout = 30 * time.Second
)

// Client is the subset of *redis.Client the cache needs.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type OrderSource interface {
	FindAllPaidOrders(ctx context.Context) ([]domain.Order, error)
}

type DatasetSource interface {
	FindAll(ctx context.Context) ([]domain.Dataset, error)
}

// SnapshotRepository is a read-through cache over the two bulk reads the
// recommendation engine makes per request. Redis errors fall back to the
// underlying stores.
type SnapshotRepository struct {
	client      Client
	orders      OrderSource
	datasets    DatasetSource
	ttl         time.Duration
	loadTimeout time.Duration
	group       singleflight.Group
}

func NewSnapshotRepository(client Client, orders OrderSource, datasets DatasetSource, ttl time.Duration) *SnapshotRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &SnapshotRepository{
		client:      client,
		orders:      orders,
		datasets:    datasets,
		ttl:         ttl,
		loadTimeout: defaultLoadTimeout,
	}
}

func (r *SnapshotRepository) FindAllPaidOrders(ctx context.Context) ([]domain.Order, error) {
	return readThrough(ctx, r, keyPaidOrders, "paid_orders", r.orders.FindAllPaidOrders)
}

func (r *SnapshotRepository) FindAll(ctx context.Context) ([]domain.Dataset, error) {
	return readThrough(ctx, r, keyCatalog, "catalog", r.datasets.FindAll)
}

// InvalidateOrders drops only the cached order snapshot, so trending and
// collaborative signals see a newly paid order without reloading the catalog.
func (r *SnapshotRepository) InvalidateOrders(ctx context.Context) error {
	r.group.Forget(keyPaidOrders)

	if err := r.client.Del(ctx, keyPaidOrders).Err(); err != nil {
		return fmt.Errorf("failed to invalidate order snapshot: %w", err)
	}

	return nil
}

// Invalidate drops both snapshots.
func (r *SnapshotRepository) Invalidate(ctx context.Context) error {
	r.group.Forget(keyPaidOrders)
	r.group.Forget(keyCatalog)

	if err := r.client.Del(ctx, keyPaidOrders, keyCatalog).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshots: %w", err)
	}

	return nil
}

func readThrough[T any](
	ctx context.Context,
	r *SnapshotRepository,
	key, kind string,
	load func(context.Context) ([]T, error),
) ([]T, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []T
		if err := json.Unmarshal(raw, &cached); err == nil {
			metrics.CacheHit(kind)
			return cached, nil
		}
		logger.Warn("discarding unreadable snapshot", "key", key)
	case !errors.Is(err, redis.Nil):
		logger.Warn("snapshot cache read failed", "key", key, "error", err.Error())
	}

	metrics.CacheMiss(kind)

	// concurrent misses share one store read. The read is detached from the
	// caller that started it so a cancelled request cannot fail the others.
	ch := r.group.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.loadTimeout)
		defer cancel()

		items, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(items)
		if err != nil {
			logger.Warn("failed to encode snapshot", "key", key, "error", err.Error())
			return items, nil
		}
		if err := r.client.Set(loadCtx, key, payload, r.ttl).Err(); err != nil {
			logger.Warn("failed to store snapshot", "key", key, "error", err.Error())
		}

		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]T), nil
	}
}
