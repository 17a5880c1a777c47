package entity

import "time"

// Progress phases reported while loading; observational only, never part of
// control flow
const (
	PhaseFetching        = "fetching"
	PhaseParsing         = "parsing"
	PhaseMapping         = "mapping"
	PhaseValidating      = "validating"
	PhaseComplete        = "complete"
	PhaseCacheHit        = "cache-hit"
	PhaseFallbackCache   = "fallback-cache"
	PhaseFallbackBuiltin = "fallback-builtin"
)

// ProgressFunc receives phase transitions during a load
type ProgressFunc func(phase string)

// LoadResult is the outcome of one pipeline invocation. Records is nil only
// for the built-in fallback: the caller supplies its own bundled dataset.
type LoadResult struct {
	RunID     string            `json:"runId"`
	Records   []*PlanetRecord   `json:"records"`
	Report    *ValidationReport `json:"report,omitempty"`
	Source    string            `json:"source"`
	FetchedAt time.Time         `json:"fetchedAt"`
	FromCache bool              `json:"fromCache"`
	Error     string            `json:"error,omitempty"` // degraded-operation detail, never fatal
}
