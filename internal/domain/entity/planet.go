package entity

// Record origin tags
const (
	SourceLive            = "NASA Exoplanet Archive (live)"
	SourceCacheFresh      = "cache (fresh)"
	SourceBuiltinFallback = "built-in fallback"
)

// PlanetRecord is one confirmed or synthetic exoplanet. Optional numeric
// fields are pointers: nil means the source did not report a value. After
// validation the required fields (Distance, Radius, Mass, EqTemp, Period,
// SemiMajorAxis) are guaranteed non-nil.
type PlanetRecord struct {
	// Identity
	Name   string `json:"name" bson:"name"`
	System string `json:"system" bson:"system"`

	// Physical
	Radius        *float64 `json:"radius" bson:"radius"`               // Earth radii
	Mass          *float64 `json:"mass" bson:"mass"`                   // Earth masses
	Period        *float64 `json:"period" bson:"period"`               // days
	SemiMajorAxis *float64 `json:"semiMajorAxis" bson:"semiMajorAxis"` // AU
	EqTemp        *float64 `json:"eqTemp" bson:"eqTemp"`               // Kelvin
	Eccentricity  *float64 `json:"eccentricity,omitempty" bson:"eccentricity,omitempty"`
	Inclination   *float64 `json:"inclination,omitempty" bson:"inclination,omitempty"`
	Distance      *float64 `json:"distance" bson:"distance"` // light-years

	// Host star
	StarType   string   `json:"starType" bson:"starType"`
	StarTemp   *float64 `json:"starTemp,omitempty" bson:"starTemp,omitempty"` // Kelvin
	StarMass   *float64 `json:"starMass,omitempty" bson:"starMass,omitempty"` // solar masses
	StarLum    *float64 `json:"starLum,omitempty" bson:"starLum,omitempty"`   // solar luminosities, linear
	StarLumLog *float64 `json:"starLumLog,omitempty" bson:"starLumLog,omitempty"`

	// Observational
	RA   *float64 `json:"ra,omitempty" bson:"ra,omitempty"`   // degrees
	Dec  *float64 `json:"dec,omitempty" bson:"dec,omitempty"` // degrees
	VMag *float64 `json:"vMag,omitempty" bson:"vMag,omitempty"`
	KMag *float64 `json:"kMag,omitempty" bson:"kMag,omitempty"`

	// Discovery
	Discovered        *int   `json:"discovered,omitempty" bson:"discovered,omitempty"`
	DiscoveryMethod   string `json:"discoveryMethod" bson:"discoveryMethod"`
	DiscoveryFacility string `json:"discoveryFacility,omitempty" bson:"discoveryFacility,omitempty"`
	DiscoveryRef      string `json:"discoveryRef,omitempty" bson:"discoveryRef,omitempty"`

	// Provenance
	Source          string `json:"source" bson:"source"`
	Controversial   bool   `json:"controversial" bson:"controversial"`
	NASARaw         bool   `json:"nasaRaw" bson:"nasaRaw"`
	Curated         bool   `json:"curated" bson:"curated"`
	EqTempEstimated bool   `json:"eqTempEstimated" bson:"eqTempEstimated"`

	// Derived by science enrichment
	Type                string               `json:"type,omitempty" bson:"type,omitempty"`
	Atmosphere          []GasFraction        `json:"atmosphere,omitempty" bson:"atmosphere,omitempty"`
	Habitability        float64              `json:"habitability" bson:"habitability"`
	HZStatus            *HZStatus            `json:"hzStatus,omitempty" bson:"hzStatus,omitempty"`
	ESI                 *ESIResult           `json:"esi,omitempty" bson:"esi,omitempty"`
	Coords              *Coordinates         `json:"coords,omitempty" bson:"coords,omitempty"`
	Constellation       string               `json:"constellation,omitempty" bson:"constellation,omitempty"`
	Observability       *Observability       `json:"observability,omitempty" bson:"observability,omitempty"`
	MagnitudeGuidance   *MagnitudeGuidance   `json:"magnitudeGuidance,omitempty" bson:"magnitudeGuidance,omitempty"`
	DiscoveryMethodInfo *DiscoveryMethodInfo `json:"discoveryMethodInfo,omitempty" bson:"discoveryMethodInfo,omitempty"`
}

// Float returns a pointer to v; convenience for building records
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }

// Deref returns *p, or 0 when p is nil
func Deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
