package rest

import (
	"context"
	"net/http"
	"time"

	"dataMarket/domain"
	"dataMarket/pkg/logger"
	"dataMarket/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecommendationService
		timeout     time.Duration
	}

	RecommendationService interface {
		GetPersonalizedRecommendations(ctx context.Context, consumerID uint, limit int) ([]domain.Recommendation, error)
		GetTrendingDatasets(ctx context.Context, limit int) ([]domain.Recommendation, error)
		GetSimilarDatasets(ctx context.Context, datasetID uint64, limit int) ([]domain.Recommendation, error)
	}

	// non-positive limits are clamped by the service
	RecommendationQuery struct {
		Limit int `query:"limit"`
	}

	SimilarQuery struct {
		DatasetID uint64 `param:"datasetId" validate:"required"`
		Limit     int    `query:"limit"`
	}
)

func NewRecommendationHandler(svc RecommendationService, timeout time.Duration) *RecommendationHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: svc,
		timeout:     timeout,
	}
}

const retrievalFailedMessage = "failed to retrieve recommendations"

// GET /api/v1/recommendations/personalized?limit=10
func (h *RecommendationHandler) Personalized(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	recs, err := h.recoService.GetPersonalizedRecommendations(ctx, userID, q.Limit)
	metrics.ObserveRecommend(domain.RecommendationHybrid.String(), time.Since(start).Seconds(), len(recs), err)
	if err != nil {
		logger.Error("Failed to get personalized recommendations", err,
			"trace_id", logger.TraceIDFromContext(ctx), "user_id", userID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: retrievalFailedMessage})
	}

	return c.JSON(http.StatusOK, recs)
}

// GET /api/v1/recommendations/trending?limit=10
func (h *RecommendationHandler) Trending(c echo.Context) error {
	var q RecommendationQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	recs, err := h.recoService.GetTrendingDatasets(ctx, q.Limit)
	metrics.ObserveRecommend(domain.RecommendationTrending.String(), time.Since(start).Seconds(), len(recs), err)
	if err != nil {
		logger.Error("Failed to get trending datasets", err, "trace_id", logger.TraceIDFromContext(ctx))
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: retrievalFailedMessage})
	}

	return c.JSON(http.StatusOK, recs)
}

// GET /api/v1/recommendations/similar/:datasetId?limit=5
func (h *RecommendationHandler) Similar(c echo.Context) error {
	var q SimilarQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid dataset id or limit"})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid dataset id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	recs, err := h.recoService.GetSimilarDatasets(ctx, q.DatasetID, q.Limit)
	metrics.ObserveRecommend(domain.RecommendationContentBased.String(), time.Since(start).Seconds(), len(recs), err)
	if err != nil {
		logger.Error("Failed to get similar datasets", err,
			"trace_id", logger.TraceIDFromContext(ctx), "dataset_id", q.DatasetID)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: retrievalFailedMessage})
	}

	return c.JSON(http.StatusOK, recs)
}
