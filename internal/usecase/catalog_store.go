package usecase

import (
	"math"
	"sort"
	"strings"
	"sync"

	"exocatalog-service/internal/domain/entity"
)

// CatalogUpdate is broadcast to subscribers after every snapshot swap
type CatalogUpdate struct {
	Records []*entity.PlanetRecord
	Source  string
}

// CatalogStore owns the current enriched snapshot. The pipeline-side
// service is the only writer; swaps are atomic from the readers' view.
// Late subscribers receive the current snapshot on subscription.
type CatalogStore struct {
	mu          sync.RWMutex
	records     []*entity.PlanetRecord
	source      string
	populated   bool
	subscribers []chan CatalogUpdate
}

// NewCatalogStore creates an empty catalog store
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// Replace swaps the snapshot wholesale and notifies subscribers. Records
// must not be mutated by the caller afterwards.
func (s *CatalogStore) Replace(records []*entity.PlanetRecord, source string) {
	s.mu.Lock()
	s.records = records
	s.source = source
	s.populated = true
	subscribers := append([]chan CatalogUpdate(nil), s.subscribers...)
	s.mu.Unlock()

	update := CatalogUpdate{Records: records, Source: source}
	for _, ch := range subscribers {
		select {
		case ch <- update:
		default: // slow subscriber, drop rather than block the writer
		}
	}
}

// Subscribe registers for snapshot swaps. A subscriber arriving after the
// catalog is populated immediately receives the current snapshot.
func (s *CatalogStore) Subscribe() <-chan CatalogUpdate {
	ch := make(chan CatalogUpdate, 1)
	s.mu.Lock()
	s.subscribers = append(s.subscribers, ch)
	if s.populated {
		ch <- CatalogUpdate{Records: s.records, Source: s.source}
	}
	s.mu.Unlock()
	return ch
}

// Snapshot returns the current record slice; callers must not mutate it
func (s *CatalogStore) Snapshot() []*entity.PlanetRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Source returns the origin tag of the current snapshot
func (s *CatalogStore) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// GetByName returns the record with the exact name, or nil
func (s *CatalogStore) GetByName(name string) *entity.PlanetRecord {
	for _, record := range s.Snapshot() {
		if record.Name == name {
			return record
		}
	}
	return nil
}

// GetSystemPlanets returns every planet of the given host system
func (s *CatalogStore) GetSystemPlanets(systemName string) []*entity.PlanetRecord {
	var planets []*entity.PlanetRecord
	for _, record := range s.Snapshot() {
		if strings.EqualFold(record.System, systemName) {
			planets = append(planets, record)
		}
	}
	return planets
}

// Search applies the case-insensitive substring query, the AND-composed
// filters and the final stable sort
func (s *CatalogStore) Search(query string, filters entity.SearchFilters) []*entity.PlanetRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	var results []*entity.PlanetRecord
	for _, record := range s.Snapshot() {
		if query != "" && !matchesQuery(record, query) {
			continue
		}
		if !matchesFilters(record, filters) {
			continue
		}
		results = append(results, record)
	}

	sortRecords(results, filters.SortBy, filters.SortDesc)
	return results
}

func matchesQuery(record *entity.PlanetRecord, query string) bool {
	for _, field := range []string{
		record.Name, record.System, record.Type,
		record.DiscoveryMethod, record.Constellation,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func matchesFilters(record *entity.PlanetRecord, f entity.SearchFilters) bool {
	if f.Type != "" && record.Type != f.Type {
		return false
	}
	if f.MinHabitability != nil && record.Habitability < *f.MinHabitability {
		return false
	}
	if f.MaxDistance != nil && (record.Distance == nil || *record.Distance > *f.MaxDistance) {
		return false
	}
	if f.MinTemp != nil && (record.EqTemp == nil || *record.EqTemp < *f.MinTemp) {
		return false
	}
	if f.MaxTemp != nil && (record.EqTemp == nil || *record.EqTemp > *f.MaxTemp) {
		return false
	}
	if f.MinRadius != nil && (record.Radius == nil || *record.Radius < *f.MinRadius) {
		return false
	}
	if f.MaxRadius != nil && (record.Radius == nil || *record.Radius > *f.MaxRadius) {
		return false
	}
	if f.MinYear != nil && (record.Discovered == nil || *record.Discovered < *f.MinYear) {
		return false
	}
	if f.MaxYear != nil && (record.Discovered == nil || *record.Discovered > *f.MaxYear) {
		return false
	}
	if f.StarTypePrefix != "" &&
		!strings.HasPrefix(strings.ToUpper(record.StarType), strings.ToUpper(f.StarTypePrefix)) {
		return false
	}
	if f.DiscoveryMethod != "" && record.DiscoveryMethod != f.DiscoveryMethod {
		return false
	}
	if f.HZMembership != "" {
		if record.HZStatus == nil {
			return false
		}
		switch strings.ToLower(f.HZMembership) {
		case "conservative":
			if record.HZStatus.Label != entity.HZConservative {
				return false
			}
		case "optimistic":
			if record.HZStatus.Label != entity.HZConservative &&
				record.HZStatus.Label != entity.HZOptimistic {
				return false
			}
		}
	}
	if f.MinESI != nil && (record.ESI == nil || record.ESI.Global < *f.MinESI) {
		return false
	}
	return true
}

// sortRecords stable-sorts by the chosen field. Records missing the sort
// key always collate last, regardless of direction (the missing key maps
// to +Inf ascending and -Inf descending).
func sortRecords(records []*entity.PlanetRecord, sortBy string, desc bool) {
	if sortBy == "" {
		sortBy = "name"
	}

	if sortBy == "name" {
		sort.SliceStable(records, func(i, j int) bool {
			if desc {
				return records[i].Name > records[j].Name
			}
			return records[i].Name < records[j].Name
		})
		return
	}

	key := func(record *entity.PlanetRecord) float64 {
		var value *float64
		switch sortBy {
		case "distance":
			value = record.Distance
		case "radius":
			value = record.Radius
		case "mass":
			value = record.Mass
		case "eqTemp", "temperature":
			value = record.EqTemp
		case "habitability":
			return record.Habitability
		case "esi":
			if record.ESI != nil {
				return record.ESI.Global
			}
		case "discovered", "year":
			if record.Discovered != nil {
				return float64(*record.Discovered)
			}
		}
		if value != nil {
			return *value
		}
		if desc {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return key(records[i]) > key(records[j])
		}
		return key(records[i]) < key(records[j])
	})
}

// GetStats aggregates the current snapshot
func (s *CatalogStore) GetStats() *entity.CatalogStats {
	records := s.Snapshot()
	stats := &entity.CatalogStats{
		Total:             len(records),
		ByType:            make(map[string]int),
		ByStarClass:       make(map[string]int),
		ByDiscoveryMethod: make(map[string]int),
	}
	if len(records) == 0 {
		return stats
	}

	totalHabitability := 0.0
	var nearest, mostHabitable *entity.PlanetRecord
	for _, record := range records {
		if record.Type != "" {
			stats.ByType[record.Type]++
		}
		if record.StarType != "" {
			stats.ByStarClass[strings.ToUpper(record.StarType[:1])]++
		}
		if record.DiscoveryMethod != "" {
			stats.ByDiscoveryMethod[record.DiscoveryMethod]++
		}

		totalHabitability += record.Habitability
		if record.Habitability >= 0.7 {
			stats.HighlyHabitable++
		}
		if record.ESI != nil && record.ESI.Global >= 0.7 {
			stats.HighESI++
		}
		if record.HZStatus != nil &&
			(record.HZStatus.Label == entity.HZConservative || record.HZStatus.Label == entity.HZOptimistic) {
			stats.InOptimisticHZ++
		}

		if record.Distance != nil && *record.Distance > 0 &&
			(nearest == nil || *record.Distance < *nearest.Distance) {
			nearest = record
		}
		if mostHabitable == nil || record.Habitability > mostHabitable.Habitability {
			mostHabitable = record
		}
	}

	stats.AverageHabitability = math.Round(totalHabitability/float64(len(records))*1000) / 1000
	stats.Nearest = nearest
	stats.MostHabitable = mostHabitable
	return stats
}
