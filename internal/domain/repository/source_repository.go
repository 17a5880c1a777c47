package repository

import (
	"context"
	"fmt"
)

// SourceErrorKind classifies remote source failures
type SourceErrorKind string

const (
	SourceTimeout    SourceErrorKind = "timeout"
	SourceHTTP       SourceErrorKind = "http"
	SourceNetwork    SourceErrorKind = "network"
	SourceBadPayload SourceErrorKind = "bad_payload"
)

// SourceError wraps a remote fetch failure with its classification. The
// client never retries; fallback policy lives in the pipeline.
type SourceError struct {
	Kind       SourceErrorKind
	StatusCode int
	Err        error
}

func (e *SourceError) Error() string {
	if e.Kind == SourceHTTP {
		return fmt.Sprintf("source error (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("source error (%s): %v", e.Kind, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// SourceClient fetches the raw bulk table from the remote archive
type SourceClient interface {
	FetchPlanets(ctx context.Context) ([]map[string]interface{}, error)
}
