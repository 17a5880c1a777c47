package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"exocatalog-service/internal/domain/entity"
	"exocatalog-service/internal/usecase"
	"exocatalog-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// apiResponse is the uniform response envelope
type apiResponse struct {
	Status int         `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

// Handler exposes the catalog over HTTP. All reads serve the current
// snapshot; the only write is a refresh trigger.
type Handler struct {
	catalog *usecase.CatalogStore
	service *usecase.CatalogService
	logger  logger.Logger
}

// NewHandler creates the API handler
func NewHandler(catalog *usecase.CatalogStore, service *usecase.CatalogService, logger logger.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		service: service,
		logger:  logger,
	}
}

// Routes builds the router with middleware and all endpoints mounted
func (h *Handler) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/planets", h.ListPlanets)
		r.Get("/planets/{name}", h.GetPlanet)
		r.Get("/systems/{name}", h.GetSystem)
		r.Get("/stats", h.GetStats)
		r.Get("/status", h.GetStatus)
		r.Post("/refresh", h.TriggerRefresh)
	})

	return r
}

func respond(w http.ResponseWriter, r *http.Request, data interface{}) {
	render.JSON(w, r, apiResponse{Status: 0, Msg: "ok", Data: data})
}

func respondError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	render.Status(r, code)
	render.JSON(w, r, apiResponse{Status: code, Msg: msg})
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Records   int       `json:"records"`
}

// Health reports liveness and the current snapshot size
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Service:   "exocatalog-service",
		Records:   len(h.catalog.Snapshot()),
	})
}

// PlanetListResponse wraps search results with their provenance
type PlanetListResponse struct {
	Planets []*entity.PlanetRecord `json:"planets"`
	Total   int                    `json:"total"`
	Source  string                 `json:"source"`
}

// ListPlanets serves the search endpoint. Query parameters map onto the
// filter set; omitted parameters are inactive.
func (h *Handler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := entity.SearchFilters{
		Type:            q.Get("type"),
		StarTypePrefix:  q.Get("starType"),
		DiscoveryMethod: q.Get("method"),
		HZMembership:    q.Get("hz"),
		SortBy:          q.Get("sortBy"),
		SortDesc:        q.Get("sortDesc") == "true",
	}

	var parseErr string
	floatParam := func(name string) *float64 {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			parseErr = "invalid " + name
			return nil
		}
		return &value
	}
	intParam := func(name string) *int {
		raw := q.Get(name)
		if raw == "" {
			return nil
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			parseErr = "invalid " + name
			return nil
		}
		return &value
	}

	filters.MinHabitability = floatParam("minHabitability")
	filters.MaxDistance = floatParam("maxDistance")
	filters.MinTemp = floatParam("minTemp")
	filters.MaxTemp = floatParam("maxTemp")
	filters.MinRadius = floatParam("minRadius")
	filters.MaxRadius = floatParam("maxRadius")
	filters.MinESI = floatParam("minESI")
	filters.MinYear = intParam("minYear")
	filters.MaxYear = intParam("maxYear")
	if parseErr != "" {
		respondError(w, r, http.StatusBadRequest, parseErr)
		return
	}

	results := h.catalog.Search(q.Get("q"), filters)
	total := len(results)

	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			respondError(w, r, http.StatusBadRequest, "invalid limit")
			return
		}
		if n < len(results) {
			results = results[:n]
		}
	}

	respond(w, r, PlanetListResponse{
		Planets: results,
		Total:   total,
		Source:  h.catalog.Source(),
	})
}

// nameParam extracts the {name} route parameter; planet and system names
// contain spaces, so the segment arrives percent-encoded
func nameParam(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}

// GetPlanet serves a single record by exact name
func (h *Handler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	record := h.catalog.GetByName(name)
	if record == nil {
		respondError(w, r, http.StatusNotFound, "planet not found: "+name)
		return
	}
	respond(w, r, record)
}

// SystemResponse groups every planet of one host system
type SystemResponse struct {
	System  string                 `json:"system"`
	Planets []*entity.PlanetRecord `json:"planets"`
}

// GetSystem serves all planets of a host system (case-insensitive)
func (h *Handler) GetSystem(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	planets := h.catalog.GetSystemPlanets(name)
	if len(planets) == 0 {
		respondError(w, r, http.StatusNotFound, "system not found: "+name)
		return
	}
	respond(w, r, SystemResponse{System: planets[0].System, Planets: planets})
}

// GetStats serves the snapshot aggregates
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.catalog.GetStats())
}

// StatusResponse describes the last load and the snapshot provenance
type StatusResponse struct {
	Source    string                   `json:"source"`
	Records   int                      `json:"records"`
	FetchedAt *time.Time               `json:"fetchedAt,omitempty"`
	FromCache bool                     `json:"fromCache"`
	Degraded  bool                     `json:"degraded"`
	Error     string                   `json:"error,omitempty"`
	Report    *entity.ValidationReport `json:"report,omitempty"`
}

// GetStatus serves load provenance: where the data came from, how old it
// is, and the validation report of the last successful pipeline run
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := StatusResponse{
		Source:  h.catalog.Source(),
		Records: len(h.catalog.Snapshot()),
	}
	if last := h.service.LastResult(); last != nil {
		if !last.FetchedAt.IsZero() {
			status.FetchedAt = &last.FetchedAt
		}
		status.FromCache = last.FromCache
		status.Error = last.Error
		status.Report = last.Report
		status.Degraded = last.Error != "" ||
			strings.Contains(last.Source, "stale") ||
			last.Source == entity.SourceBuiltinFallback
	}
	respond(w, r, status)
}

// TriggerRefresh kicks a background refresh and returns immediately; the
// snapshot is swapped once the refresh succeeds
func (h *Handler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		h.service.RefreshInBackground(ctx)
	}()

	h.logger.Info("Manual refresh triggered", "remote", r.RemoteAddr)
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, apiResponse{Status: 0, Msg: "refresh started"})
}
