package entity

// BadValue is one out-of-range field flagged during validation. The record
// itself stays in the cleaned set.
type BadValue struct {
	Name  string  `json:"name" bson:"name"`
	Field string  `json:"field" bson:"field"`
	Value float64 `json:"value" bson:"value"`
}

// SummaryStats aggregates the cleaned dataset for the status surface
type SummaryStats struct {
	MedianRadius     float64  `json:"medianRadius" bson:"medianRadius"`
	MedianMass       float64  `json:"medianMass" bson:"medianMass"`
	MedianTemp       float64  `json:"medianTemp" bson:"medianTemp"`
	MedianDistance   float64  `json:"medianDistance" bson:"medianDistance"`
	DiscoveryMethods []string `json:"discoveryMethods" bson:"discoveryMethods"`
	EarliestYear     int      `json:"earliestYear" bson:"earliestYear"`
	LatestYear       int      `json:"latestYear" bson:"latestYear"`
}

// ValidationReport accompanies each cleaned dataset
type ValidationReport struct {
	TotalInput    int            `json:"totalInput" bson:"totalInput"`
	TotalOutput   int            `json:"totalOutput" bson:"totalOutput"`
	Cleaned       int            `json:"cleaned" bson:"cleaned"` // dedup-dropped count
	NullFields    map[string]int `json:"nullFields" bson:"nullFields"`
	BadValues     []BadValue     `json:"badValues" bson:"badValues"`
	Duplicates    map[string]int `json:"duplicates" bson:"duplicates"`
	Controversial int            `json:"controversial" bson:"controversial"`
	Summary       *SummaryStats  `json:"summary,omitempty" bson:"summary,omitempty"`
}
