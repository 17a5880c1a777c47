package entity

import "time"

// CacheMetadata is stored alongside the serialized record array. A version
// mismatch invalidates the whole cache.
type CacheMetadata struct {
	Version     int               `json:"version"`
	FetchedAt   time.Time         `json:"fetchedAt"`
	RecordCount int               `json:"recordCount"`
	Report      *ValidationReport `json:"report,omitempty"`
	Truncated   bool              `json:"truncated"`
}
