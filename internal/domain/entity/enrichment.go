package entity

// GasFraction is one component of an atmosphere mix; percentages across a
// record's atmosphere sum to 100 within rounding
type GasFraction struct {
	Gas        string  `json:"gas" bson:"gas"`
	Percentage float64 `json:"percentage" bson:"percentage"`
}

// Band is an orbital distance range in AU
type Band struct {
	Inner float64 `json:"inner" bson:"inner"`
	Outer float64 `json:"outer" bson:"outer"`
}

// HZ status labels
const (
	HZConservative = "In Conservative HZ"
	HZOptimistic   = "In Optimistic HZ"
	HZTooHot       = "Too Hot (inside HZ)"
	HZTooCold      = "Too Cold (outside HZ)"
)

// HZStatus places a planet relative to its star's habitable zone
type HZStatus struct {
	Label        string `json:"label" bson:"label"`
	Confidence   string `json:"confidence" bson:"confidence"` // "high" or "moderate"
	Conservative Band   `json:"conservative" bson:"conservative"`
	Optimistic   Band   `json:"optimistic" bson:"optimistic"`
	ModelNote    string `json:"modelNote,omitempty" bson:"modelNote,omitempty"`
}

// ESIResult is the Earth Similarity Index breakdown. Component values are
// nil when the underlying quantity could not be estimated; all present
// values lie in [0, 1] and are rounded to 3 decimals.
type ESIResult struct {
	Global     float64  `json:"global" bson:"global"`
	Interior   float64  `json:"interior" bson:"interior"`
	Surface    float64  `json:"surface" bson:"surface"`
	Radius     *float64 `json:"radius,omitempty" bson:"radius,omitempty"`
	Density    *float64 `json:"density,omitempty" bson:"density,omitempty"`
	EscapeVel  *float64 `json:"escapeVel,omitempty" bson:"escapeVel,omitempty"`
	Temp       *float64 `json:"temp,omitempty" bson:"temp,omitempty"`
	Confidence string   `json:"confidence" bson:"confidence"`
	Note       string   `json:"note,omitempty" bson:"note,omitempty"`
}

// Coordinates carries sexagesimal-formatted equatorial coordinates
type Coordinates struct {
	RA     string  `json:"ra" bson:"ra"`
	Dec    string  `json:"dec" bson:"dec"`
	RADeg  float64 `json:"raDeg" bson:"raDeg"`
	DecDeg float64 `json:"decDeg" bson:"decDeg"`
}

// Observability describes when and from where the host star is best seen
type Observability struct {
	BestMonth  string   `json:"bestMonth" bson:"bestMonth"`
	Season     []string `json:"season" bson:"season"`
	Hemisphere string   `json:"hemisphere" bson:"hemisphere"`
}

// MagnitudeGuidance maps apparent magnitude to the equipment needed to see
// the host star
type MagnitudeGuidance struct {
	Band      string `json:"band" bson:"band"`
	Equipment string `json:"equipment" bson:"equipment"`
	Detail    string `json:"detail" bson:"detail"`
}

// DiscoveryMethodInfo is static metadata about a detection technique
type DiscoveryMethodInfo struct {
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	FirstUsed   int    `json:"firstUsed,omitempty" bson:"firstUsed,omitempty"`
}
