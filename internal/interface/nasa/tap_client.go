package nasa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"exocatalog-service/internal/domain/repository"
	"exocatalog-service/pkg/logger"
)

// Columns requested from the archive, one canonical solution per planet
var queryColumns = []string{
	"pl_name", "hostname", "sy_dist",
	"pl_rade", "pl_bmasse", "pl_orbper", "pl_orbsmax", "pl_eqt",
	"st_spectype", "st_teff", "st_mass", "st_lum",
	"disc_year", "discoverymethod", "disc_facility", "disc_refname",
	"ra", "dec", "sy_vmag", "sy_kmag",
	"pl_orbeccen", "pl_orbincl", "pl_controv_flag", "default_flag",
}

// TAPClient issues the single bulk query against the NASA Exoplanet Archive
// TAP service. It does not retry; fallback policy belongs to the pipeline.
type TAPClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     logger.Logger
}

// NewTAPClient creates a client for the given TAP sync endpoint
func NewTAPClient(baseURL string, timeout time.Duration, logger logger.Logger) *TAPClient {
	return &TAPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    timeout,
		logger:     logger,
	}
}

// query builds the ADQL statement for the fixed column projection
func (c *TAPClient) query() string {
	return fmt.Sprintf(
		"select %s from ps where default_flag=1 order by pl_name",
		strings.Join(queryColumns, ","),
	)
}

// FetchPlanets fetches the raw planet table. Failures are classified into
// the SourceError taxonomy; the request is cancelled after the hard timeout.
func (c *TAPClient) FetchPlanets(ctx context.Context) ([]map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("query", c.query())
	params.Set("format", "json")
	requestURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &repository.SourceError{Kind: repository.SourceNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching exoplanet archive", "url", c.baseURL)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, &repository.SourceError{Kind: repository.SourceTimeout, Err: err}
		}
		return nil, &repository.SourceError{Kind: repository.SourceNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &repository.SourceError{
			Kind:       repository.SourceHTTP,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var rows []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, &repository.SourceError{Kind: repository.SourceBadPayload, Err: err}
	}

	c.logger.Info("Fetched exoplanet archive",
		"rows", len(rows),
		"elapsed", time.Since(started).String())

	return rows, nil
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}
