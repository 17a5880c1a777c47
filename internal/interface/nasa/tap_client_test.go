package nasa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exocatalog-service/internal/domain/repository"
	"exocatalog-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPlanetsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Contains(t, r.URL.Query().Get("query"), "default_flag=1")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"pl_name":"Test b","sy_dist":10.0},{"pl_name":"Test c","sy_dist":null}]`))
	}))
	defer server.Close()

	client := NewTAPClient(server.URL, 5*time.Second, logger.NopLogger{})
	rows, err := client.FetchPlanets(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Test b", rows[0]["pl_name"])
	assert.Nil(t, rows[1]["sy_dist"])
}

func TestFetchPlanetsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewTAPClient(server.URL, 5*time.Second, logger.NopLogger{})
	_, err := client.FetchPlanets(context.Background())

	var sourceErr *repository.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, repository.SourceHTTP, sourceErr.Kind)
	assert.Equal(t, http.StatusServiceUnavailable, sourceErr.StatusCode)
}

func TestFetchPlanetsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewTAPClient(server.URL, 20*time.Millisecond, logger.NopLogger{})
	_, err := client.FetchPlanets(context.Background())

	var sourceErr *repository.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, repository.SourceTimeout, sourceErr.Kind)
}

func TestFetchPlanetsNetworkError(t *testing.T) {
	// nothing listens here
	client := NewTAPClient("http://127.0.0.1:1", 5*time.Second, logger.NopLogger{})
	_, err := client.FetchPlanets(context.Background())

	var sourceErr *repository.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, repository.SourceNetwork, sourceErr.Kind)
}

func TestFetchPlanetsBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewTAPClient(server.URL, 5*time.Second, logger.NopLogger{})
	_, err := client.FetchPlanets(context.Background())

	var sourceErr *repository.SourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, repository.SourceBadPayload, sourceErr.Kind)
}
