package inventory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nursery-monitor/core/reconcile"
	"nursery-monitor/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, svc *Service) *fiber.App {
	t.Helper()
	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandler_GetStats(t *testing.T) {
	engine := newTestEngine(staticFetcher(testRows()), reconcile.Options{WatchSpecies: "sengon"})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/stats", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody[models.StatsResponse](t, resp)
	assert.InDelta(t, 115.0, stats.Stock.NetStock, 1e-9)
	require.NotNil(t, stats.Watched)
	assert.Equal(t, "sengon", stats.Watched.Species)
}

func TestHandler_GetStats_FeedDown(t *testing.T) {
	engine := newTestEngine(failingFetcher(), reconcile.Options{})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandler_GetRecent(t *testing.T) {
	engine := newTestEngine(staticFetcher(testRows()), reconcile.Options{})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/recent?limit=2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	recent := decodeBody[models.RecentResponse](t, resp)
	assert.Len(t, recent.Records, 2)
}

func TestHandler_GetRecent_DefaultLimit(t *testing.T) {
	engine := newTestEngine(staticFetcher(testRows()), reconcile.Options{})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/recent", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	recent := decodeBody[models.RecentResponse](t, resp)
	assert.Len(t, recent.Records, 3)
}

func TestHandler_GetSpecies(t *testing.T) {
	engine := newTestEngine(staticFetcher(testRows()), reconcile.Options{})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/species/jati", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	view := decodeBody[models.SpeciesResponse](t, resp)
	assert.True(t, view.Stats.HasData)
	assert.InDelta(t, 40.0, view.Stats.Stock.NetStock, 1e-9)
}

func TestHandler_Refresh(t *testing.T) {
	engine := newTestEngine(staticFetcher(testRows()), reconcile.Options{})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("POST", "/inventory/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody[models.StatsResponse](t, resp)
	assert.False(t, stats.Stale)
}

func TestHandler_GetSnapshots_ArchiveDisabled(t *testing.T) {
	engine := newTestEngine(staticFetcher(testRows()), reconcile.Options{})
	app := newTestApp(t, NewService(engine, nil, zap.NewNop(), 0))

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/snapshots", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
