package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"exocatalog-service/internal/domain/entity"
	interfaceRepo "exocatalog-service/internal/interface/repository"
	"exocatalog-service/internal/usecase"
	"exocatalog-service/pkg/logger"
	"exocatalog-service/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	rows []map[string]interface{}
}

func (s *staticSource) FetchPlanets(ctx context.Context) ([]map[string]interface{}, error) {
	return s.rows, nil
}

var testMetrics = metrics.NewMetrics("exocatalog_api_test")

func newTestServer(t *testing.T, records []*entity.PlanetRecord) (*httptest.Server, *usecase.CatalogStore) {
	t.Helper()
	log := logger.NopLogger{}

	catalog := usecase.NewCatalogStore()
	catalog.Replace(records, entity.SourceCacheFresh)

	cache := usecase.NewCacheStore(
		interfaceRepo.NewMemoryBlobStore(),
		24*time.Hour, 7*24*time.Hour, 1<<20, nil, log,
	)
	pipeline := usecase.NewPipeline(
		&staticSource{}, usecase.NewFieldMapper(log), usecase.NewValidator(log),
		cache, testMetrics, log,
	)
	service := usecase.NewCatalogService(pipeline, catalog, 0, testMetrics, log)

	handler := NewHandler(catalog, service, log)
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server, catalog
}

func apiRecords() []*entity.PlanetRecord {
	return []*entity.PlanetRecord{
		{
			Name: "TRAPPIST-1 e", System: "TRAPPIST-1", Type: "Terrestrial",
			Radius: entity.Float(0.92), Distance: entity.Float(40.7),
			EqTemp: entity.Float(250), Habitability: 0.82,
			DiscoveryMethod: "Transit",
		},
		{
			Name: "TRAPPIST-1 b", System: "TRAPPIST-1", Type: "Terrestrial",
			Radius: entity.Float(1.12), Distance: entity.Float(40.7),
			EqTemp: entity.Float(400), Habitability: 0.21,
			DiscoveryMethod: "Transit",
		},
		{
			Name: "51 Peg b", System: "51 Peg", Type: "Hot Jupiter",
			Radius: entity.Float(13.0), Distance: entity.Float(50.6),
			EqTemp: entity.Float(1260), Habitability: 0.02,
			DiscoveryMethod: "Radial Velocity",
		},
	}
}

type envelope struct {
	Status int             `json:"status"`
	Msg    string          `json:"msg"`
	Data   json.RawMessage `json:"data"`
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return resp.StatusCode
}

func TestListPlanetsQueryAndFilter(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	var list PlanetListResponse
	code := getJSON(t, server.URL+"/api/v1/planets?q=trappist&minHabitability=0.5", &list)

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, list.Planets, 1)
	assert.Equal(t, "TRAPPIST-1 e", list.Planets[0].Name)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, entity.SourceCacheFresh, list.Source)
}

func TestListPlanetsLimit(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	var list PlanetListResponse
	code := getJSON(t, server.URL+"/api/v1/planets?limit=2", &list)

	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list.Planets, 2)
	assert.Equal(t, 3, list.Total)
}

func TestListPlanetsRejectsBadParams(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	code := getJSON(t, server.URL+"/api/v1/planets?maxDistance=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = getJSON(t, server.URL+"/api/v1/planets?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetPlanetByName(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	var record entity.PlanetRecord
	code := getJSON(t, server.URL+"/api/v1/planets/"+url.PathEscape("51 Peg b"), &record)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "51 Peg b", record.Name)

	code = getJSON(t, server.URL+"/api/v1/planets/Nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetSystem(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	var system SystemResponse
	code := getJSON(t, server.URL+"/api/v1/systems/trappist-1", &system)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "TRAPPIST-1", system.System)
	assert.Len(t, system.Planets, 2)

	code = getJSON(t, server.URL+"/api/v1/systems/Unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetStats(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	var stats entity.CatalogStats
	code := getJSON(t, server.URL+"/api/v1/stats", &stats)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByType["Terrestrial"])
}

func TestGetStatus(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	var status StatusResponse
	code := getJSON(t, server.URL+"/api/v1/status", &status)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, entity.SourceCacheFresh, status.Source)
	assert.Equal(t, 3, status.Records)
}

func TestTriggerRefreshAccepted(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	resp, err := http.Post(server.URL+"/api/v1/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t, apiRecords())

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 3, health.Records)
}
