package recommendation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dataMarket/domain"
	"dataMarket/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ---- Repository interfaces ----

type OrderRepository interface {
	FindAllPaidOrders(ctx context.Context) ([]domain.Order, error)
}

type DatasetRepository interface {
	FindAll(ctx context.Context) ([]domain.Dataset, error)
}

// ---- Usecase / Service ----

type RecommendationService struct {
	orderRepo   OrderRepository
	datasetRepo DatasetRepository
	cfg         Config
	now         func() time.Time
}

func NewRecommendationService(
	orderRepo OrderRepository,
	datasetRepo DatasetRepository,
	cfg Config,
) *RecommendationService {
	return &RecommendationService{
		orderRepo:   orderRepo,
		datasetRepo: datasetRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

func (s *RecommendationService) Config() Config {
	return s.cfg
}

// snapshot is the per-request, read-only view every scorer works from.
type snapshot struct {
	orders  []domain.Order
	catalog []domain.Dataset
}

// loadSnapshot fetches paid orders and the catalog concurrently, once.
func (s *RecommendationService) loadSnapshot(ctx context.Context) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := s.orderRepo.FindAllPaidOrders(gctx)
		if err != nil {
			return fmt.Errorf("%w: paid orders: %w", ErrRetrievalFailed, err)
		}
		snap.orders = orders
		return nil
	})
	g.Go(func() error {
		catalog, err := s.datasetRepo.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("%w: catalog: %w", ErrRetrievalFailed, err)
		}
		snap.catalog = catalog
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}

	return snap, nil
}

func (s *RecommendationService) windowStart() time.Time {
	return s.now().AddDate(0, 0, -s.cfg.TrendingWindowDays)
}

// purchaseSets groups paid orders into one set per buyer.
func purchaseSets(orders []domain.Order) map[uint]PurchaseSet {
	sets := make(map[uint]PurchaseSet)
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		set, ok := sets[o.BuyerID]
		if !ok {
			set = make(PurchaseSet)
			sets[o.BuyerID] = set
		}
		set.Add(o.DatasetID)
	}
	return sets
}

func (s *RecommendationService) GetPersonalizedRecommendations(
	ctx context.Context,
	consumerID uint,
	limit int,
) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	limit = clampLimit(limit, s.cfg.DefaultPersonalizedLimit, s.cfg.MaxLimit)

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		logger.Error("failed to load recommendation snapshot", err,
			"trace_id", logger.TraceIDFromContext(ctx))
		return nil, err
	}

	all := purchaseSets(snap.orders)
	own := all[consumerID]
	if own == nil {
		own = make(PurchaseSet)
	}

	candidates := make([]domain.Dataset, 0, len(snap.catalog))
	purchased := make([]domain.Dataset, 0, len(own))
	for _, d := range snap.catalog {
		if own.Has(d.ID) {
			purchased = append(purchased, d)
			continue
		}
		candidates = append(candidates, d)
	}

	if len(candidates) == 0 {
		return []domain.Recommendation{}, nil
	}

	counts := TrendingCounts(snap.orders, s.windowStart())

	var collab, content, trending ScoreMap
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		similar := SimilarConsumers(consumerID, own, all, s.cfg.SimilarityThreshold)
		collab = Normalize(CollaborativeScores(own, similar, all, candidates))
		return gctx.Err()
	})
	g.Go(func() error {
		content = Normalize(ContentScores(purchased, candidates))
		return gctx.Err()
	})
	g.Go(func() error {
		trending = Normalize(TrendingScores(counts, candidates))
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ranked := Combine(candidates, collab, content, trending, s.cfg.Weights)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(ranked))
	for _, sc := range ranked {
		recs = append(recs, toRecommendation(
			sc.Dataset, sc.Score, domain.RecommendationHybrid, sc.Reason, counts[sc.Dataset.ID],
		))
	}

	logger.Debug("personalized recommendations",
		"trace_id", logger.TraceIDFromContext(ctx),
		"consumer_id", consumerID,
		"history", len(own),
		"candidates", len(candidates),
		"returned", len(recs),
	)

	return recs, nil
}

func (s *RecommendationService) GetTrendingDatasets(ctx context.Context, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	limit = clampLimit(limit, s.cfg.DefaultTrendingLimit, s.cfg.MaxLimit)

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		logger.Error("failed to load recommendation snapshot", err,
			"trace_id", logger.TraceIDFromContext(ctx))
		return nil, err
	}

	counts := TrendingCounts(snap.orders, s.windowStart())
	raw := TrendingScores(counts, snap.catalog)
	normalized := Normalize(raw)

	ranked := make([]domain.Dataset, 0, len(raw))
	for _, d := range snap.catalog {
		if _, ok := raw[d.ID]; ok {
			ranked = append(ranked, d)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i].ID] > counts[ranked[j].ID]
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	recs := make([]domain.Recommendation, 0, len(ranked))
	for _, d := range ranked {
		recs = append(recs, toRecommendation(
			d, normalized[d.ID], domain.RecommendationTrending, domain.ReasonTrending, counts[d.ID],
		))
	}

	return recs, nil
}

// GetSimilarDatasets lists other datasets in the seed's category in catalog
// order. An unknown seed yields an empty list.
func (s *RecommendationService) GetSimilarDatasets(
	ctx context.Context,
	datasetID uint64,
	limit int,
) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	limit = clampLimit(limit, s.cfg.DefaultSimilarLimit, s.cfg.MaxLimit)

	catalog, err := s.datasetRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog", err, "dataset_id", datasetID)
		return nil, fmt.Errorf("%w: catalog: %w", ErrRetrievalFailed, err)
	}

	seed, ok := findDataset(catalog, datasetID)
	if !ok {
		return []domain.Recommendation{}, nil
	}

	recs := make([]domain.Recommendation, 0, limit)
	for _, d := range catalog {
		if len(recs) == limit {
			break
		}
		if d.ID == seed.ID || d.Category != seed.Category {
			continue
		}
		recs = append(recs, toRecommendation(d, 1, domain.RecommendationContentBased, domain.ReasonSimilar, 0))
	}

	return recs, nil
}

func findDataset(catalog []domain.Dataset, id uint64) (domain.Dataset, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Dataset{}, false
}

func toRecommendation(
	d domain.Dataset,
	score float64,
	recoType domain.RecommendationType,
	reason domain.ReasonKind,
	purchaseCount int,
) domain.Recommendation {
	return domain.Recommendation{
		DatasetID:           d.ID,
		DatasetName:         d.Name,
		Description:         d.Description,
		Category:            d.Category,
		Price:               d.Price,
		RecommendationScore: score,
		RecommendationType:  recoType,
		Reason:              reason.Text(d.Category),
		PurchaseCount:       purchaseCount,
	}
}
