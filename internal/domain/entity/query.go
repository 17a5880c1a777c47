package entity

// SearchFilters compose with logical AND; nil/empty members are inactive
type SearchFilters struct {
	Type            string   `json:"type,omitempty"`
	MinHabitability *float64 `json:"minHabitability,omitempty"`
	MaxDistance     *float64 `json:"maxDistance,omitempty"`
	MinTemp         *float64 `json:"minTemp,omitempty"`
	MaxTemp         *float64 `json:"maxTemp,omitempty"`
	MinRadius       *float64 `json:"minRadius,omitempty"`
	MaxRadius       *float64 `json:"maxRadius,omitempty"`
	MinYear         *int     `json:"minYear,omitempty"`
	MaxYear         *int     `json:"maxYear,omitempty"`
	StarTypePrefix  string   `json:"starTypePrefix,omitempty"`
	DiscoveryMethod string   `json:"discoveryMethod,omitempty"`
	HZMembership    string   `json:"hzMembership,omitempty"` // "conservative" or "optimistic"
	MinESI          *float64 `json:"minESI,omitempty"`
	SortBy          string   `json:"sortBy,omitempty"` // default "name"
	SortDesc        bool     `json:"sortDesc,omitempty"`
}

// CatalogStats aggregates the current catalog snapshot
type CatalogStats struct {
	Total               int            `json:"total"`
	ByType              map[string]int `json:"byType"`
	ByStarClass         map[string]int `json:"byStarClass"`
	ByDiscoveryMethod   map[string]int `json:"byDiscoveryMethod"`
	AverageHabitability float64        `json:"averageHabitability"`
	HighlyHabitable     int            `json:"highlyHabitable"` // habitability >= 0.7
	HighESI             int            `json:"highESI"`         // esi.global >= 0.7
	InOptimisticHZ      int            `json:"inOptimisticHZ"`
	Nearest             *PlanetRecord  `json:"nearest,omitempty"`
	MostHabitable       *PlanetRecord  `json:"mostHabitable,omitempty"`
}
