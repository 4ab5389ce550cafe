package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dataMarket/domain"
	"dataMarket/pkg/logger"
	"dataMarket/pkg/metrics"

	"github.com/sony/gobreaker/v2"
)

type OrderStore interface {
	FindAllPaidOrders(ctx context.Context) ([]domain.Order, error)
	FindAllPaidOrdersByConsumer(ctx context.Context, consumerID uint) ([]domain.Order, error)
}

type DatasetStore interface {
	FindAll(ctx context.Context) ([]domain.Dataset, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Dataset, error)
	FindByID(ctx context.Context, id uint64) (domain.Dataset, bool, error)
}

type Settings struct {
	Name        string
	// consecutive failures that open the circuit
	MaxFailures int
	// how long the circuit stays open before probing again
	OpenTimeout time.Duration
}

// Store guards the order and catalog stores with one circuit breaker, so a
// failing database is answered fast instead of piling up requests.
type Store struct {
	orders   OrderStore
	datasets DatasetStore
	cb       *gobreaker.CircuitBreaker[any]
}

func NewStore(orders OrderStore, datasets DatasetStore, s Settings) *Store {
	if s.Name == "" {
		s.Name = "reco-store"
	}
	if s.MaxFailures <= 0 {
		s.MaxFailures = 5
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = 30 * time.Second
	}

	metrics.BreakerState.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(s.MaxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("store circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
		},
		// a caller giving up is not a store failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &Store{
		orders:   orders,
		datasets: datasets,
		cb:       cb,
	}
}

func (s *Store) State() gobreaker.State {
	return s.cb.State()
}

func execute[T any](s *Store, fn func() (T, error)) (T, error) {
	var zero T

	res, err := s.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("store unavailable: %w", err)
		}
		return zero, err
	}

	out, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected store result type %T", res)
	}
	return out, nil
}

func (s *Store) FindAllPaidOrders(ctx context.Context) ([]domain.Order, error) {
	return execute(s, func() ([]domain.Order, error) {
		return s.orders.FindAllPaidOrders(ctx)
	})
}

func (s *Store) FindAllPaidOrdersByConsumer(ctx context.Context, consumerID uint) ([]domain.Order, error) {
	return execute(s, func() ([]domain.Order, error) {
		return s.orders.FindAllPaidOrdersByConsumer(ctx, consumerID)
	})
}

func (s *Store) FindAll(ctx context.Context) ([]domain.Dataset, error) {
	return execute(s, func() ([]domain.Dataset, error) {
		return s.datasets.FindAll(ctx)
	})
}

func (s *Store) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Dataset, error) {
	return execute(s, func() ([]domain.Dataset, error) {
		return s.datasets.FindByIDs(ctx, ids)
	})
}

type lookup struct {
	dataset domain.Dataset
	found   bool
}

func (s *Store) FindByID(ctx context.Context, id uint64) (domain.Dataset, bool, error) {
	res, err := execute(s, func() (lookup, error) {
		d, ok, err := s.datasets.FindByID(ctx, id)
		return lookup{dataset: d, found: ok}, err
	})
	if err != nil {
		return domain.Dataset{}, false, err
	}
	return res.dataset, res.found, nil
}
