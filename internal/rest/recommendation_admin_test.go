package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dataMarket/business/recommendation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type staticConfig struct{}

func (staticConfig) Config() recommendation.Config {
	return recommendation.DefaultConfig()
}

type fakeInvalidator struct {
	err        error
	calls      int
	orderCalls int
}

func (f *fakeInvalidator) Invalidate(ctx context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeInvalidator) InvalidateOrders(ctx context.Context) error {
	f.orderCalls++
	return f.err
}

func adminEcho(cache SnapshotInvalidator) *echo.Echo {
	h := NewRecommendationAdminHandler(staticConfig{}, cache)
	e := echo.New()
	e.GET("/config", h.GetConfig)
	e.POST("/cache/invalidate", h.InvalidateCache)
	return e
}

func post(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
	return rec
}

func TestAdminGetConfig(t *testing.T) {
	rec := get(adminEcho(nil), "/config")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"collaborative":0.4`)
	assert.Contains(t, rec.Body.String(), `"trending_window_days":30`)
}

func TestAdminInvalidateCache(t *testing.T) {
	cache := &fakeInvalidator{}
	rec := post(adminEcho(cache), "/cache/invalidate")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, cache.calls)
	assert.Zero(t, cache.orderCalls)

	rec = post(adminEcho(&fakeInvalidator{err: errors.New("redis down")}), "/cache/invalidate")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdminInvalidateOrdersScope(t *testing.T) {
	cache := &fakeInvalidator{}
	e := adminEcho(cache)

	rec := post(e, "/cache/invalidate?scope=orders")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"scope":"orders"`)
	assert.Equal(t, 1, cache.orderCalls)
	assert.Zero(t, cache.calls)

	rec = post(e, "/cache/invalidate?scope=catalog")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, cache.orderCalls)

	rec = post(adminEcho(nil), "/cache/invalidate?scope=orders")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cache disabled")
}

func TestAdminInvalidateWithoutCache(t *testing.T) {
	rec := post(adminEcho(nil), "/cache/invalidate")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cache disabled")
}
