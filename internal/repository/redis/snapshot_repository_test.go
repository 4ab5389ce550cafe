package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dataMarket/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	ttls   map[string]time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type fakeOrders struct {
	orders []domain.Order
	err    error
	calls  int
}

func (f *fakeOrders) FindAllPaidOrders(ctx context.Context) ([]domain.Order, error) {
	f.calls++
	return f.orders, f.err
}

type fakeDatasets struct {
	datasets []domain.Dataset
	calls    int
}

func (f *fakeDatasets) FindAll(ctx context.Context) ([]domain.Dataset, error) {
	f.calls++
	return f.datasets, nil
}

// blockingOrders holds the store read open until release is closed or its
// context ends.
type blockingOrders struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
	calls   atomic.Int32
}

func newBlockingOrders() *blockingOrders {
	return &blockingOrders{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingOrders) FindAllPaidOrders(ctx context.Context) ([]domain.Order, error) {
	b.calls.Add(1)
	b.once.Do(func() { close(b.started) })

	select {
	case <-b.release:
		return []domain.Order{{ID: 1}}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestSnapshotReadThrough(t *testing.T) {
	client := newFakeClient()
	orders := &fakeOrders{orders: []domain.Order{
		{ID: 1, DatasetID: 10, BuyerID: 3, Status: domain.OrderStatusPaid, OrderDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}
	datasets := &fakeDatasets{datasets: []domain.Dataset{{ID: 10, Name: "Cell voltages", Category: "battery"}}}
	repo := NewSnapshotRepository(client, orders, datasets, 5*time.Minute)

	first, err := repo.FindAllPaidOrders(context.Background())
	require.NoError(t, err)
	second, err := repo.FindAllPaidOrders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, orders.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 5*time.Minute, client.ttls[keyPaidOrders])

	catalog, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	_, err = repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, datasets.calls)
	assert.Equal(t, "battery", catalog[0].Category)
}

func TestSnapshotInvalidateOrders(t *testing.T) {
	client := newFakeClient()
	orders := &fakeOrders{orders: []domain.Order{{ID: 1}}}
	datasets := &fakeDatasets{}
	repo := NewSnapshotRepository(client, orders, datasets, time.Minute)

	_, err := repo.FindAllPaidOrders(context.Background())
	require.NoError(t, err)
	_, err = repo.FindAll(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.InvalidateOrders(context.Background()))
	_, ok := client.data[keyPaidOrders]
	assert.False(t, ok)
	_, ok = client.data[keyCatalog]
	assert.True(t, ok)

	orders.orders = append(orders.orders, domain.Order{ID: 2})
	got, err := repo.FindAllPaidOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, orders.calls)

	require.NoError(t, repo.Invalidate(context.Background()))
	assert.Empty(t, client.data)
}

func TestSnapshotFallsBackWhenRedisFails(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("redis: connection pool timeout")
	orders := &fakeOrders{orders: []domain.Order{{ID: 1}}}
	repo := NewSnapshotRepository(client, orders, &fakeDatasets{}, time.Minute)

	got, err := repo.FindAllPaidOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSnapshotIgnoresCorruptEntry(t *testing.T) {
	client := newFakeClient()
	client.data[keyPaidOrders] = "{not json"
	orders := &fakeOrders{orders: []domain.Order{{ID: 7}}}
	repo := NewSnapshotRepository(client, orders, &fakeDatasets{}, time.Minute)

	got, err := repo.FindAllPaidOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got[0].ID)
	assert.Equal(t, 1, orders.calls)
}

func TestSnapshotStoreErrorIsNotCached(t *testing.T) {
	client := newFakeClient()
	boom := errors.New("db down")
	orders := &fakeOrders{err: boom}
	repo := NewSnapshotRepository(client, orders, &fakeDatasets{}, time.Minute)

	_, err := repo.FindAllPaidOrders(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, client.data)
}

func TestSnapshotSharedLoadSurvivesCancelledCaller(t *testing.T) {
	client := newFakeClient()
	orders := newBlockingOrders()
	repo := NewSnapshotRepository(client, orders, &fakeDatasets{}, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := repo.FindAllPaidOrders(ctx)
		firstErr <- err
	}()
	<-orders.started

	type result struct {
		orders []domain.Order
		err    error
	}
	second := make(chan result, 1)
	go func() {
		got, err := repo.FindAllPaidOrders(context.Background())
		second <- result{got, err}
	}()
	// let the second caller join the read in flight
	time.Sleep(50 * time.Millisecond)

	// the caller that started the read leaves; the read keeps going
	cancel()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller did not return")
	}

	close(orders.release)

	select {
	case res := <-second:
		require.NoError(t, res.err)
		assert.Len(t, res.orders, 1)
	case <-time.After(time.Second):
		t.Fatal("second caller did not return")
	}
	assert.Equal(t, int32(1), orders.calls.Load())

	client.mu.Lock()
	_, cached := client.data[keyPaidOrders]
	client.mu.Unlock()
	assert.True(t, cached)
}

func TestSnapshotSharedLoadHasItsOwnDeadline(t *testing.T) {
	repo := NewSnapshotRepository(newFakeClient(), newBlockingOrders(), &fakeDatasets{}, time.Minute)
	repo.loadTimeout = 20 * time.Millisecond

	_, err := repo.FindAllPaidOrders(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
