package science

import (
	"fmt"
	"math"

	"exocatalog-service/internal/domain/entity"
)

// Stellar effective temperature range the flux model is calibrated for.
// Inputs outside it are clamped and the result carries a model note.
const (
	teffModelMin = 2600.0
	teffModelMax = 7200.0
	teffSun      = 5780.0
)

// hzCurve holds the quartic coefficients of one boundary in
// Seff = s0 + a*t + b*t^2 + c*t^3 + d*t^4, t = Teff - 5780
type hzCurve struct {
	s0, a, b, c, d float64
}

// Kopparapu et al. effective stellar flux coefficients
var (
	curveRecentVenus       = hzCurve{1.776, 2.136e-4, 2.533e-8, -1.332e-11, -3.097e-15}
	curveRunawayGreenhouse = hzCurve{1.107, 1.332e-4, 1.580e-8, -8.308e-12, -1.931e-15}
	curveMaxGreenhouse     = hzCurve{0.356, 6.171e-5, 1.698e-9, -3.198e-12, -5.575e-16}
	curveEarlyMars         = hzCurve{0.320, 5.547e-5, 1.526e-9, -2.874e-12, -5.011e-16}
)

// HZBoundaries are the four boundary distances in AU plus the two bands
// derived from them. The optimistic band always contains the conservative
// one given the coefficient ordering.
type HZBoundaries struct {
	RecentVenus       float64     `json:"recentVenus"`
	RunawayGreenhouse float64     `json:"runawayGreenhouse"`
	MaxGreenhouse     float64     `json:"maxGreenhouse"`
	EarlyMars         float64     `json:"earlyMars"`
	Conservative      entity.Band `json:"conservative"`
	Optimistic        entity.Band `json:"optimistic"`
	ModelNote         string      `json:"modelNote,omitempty"`
}

// effectiveFlux evaluates one boundary curve at the given temperature
func (c hzCurve) effectiveFlux(teff float64) float64 {
	t := teff - teffSun
	return c.s0 + c.a*t + c.b*t*t + c.c*t*t*t + c.d*t*t*t*t
}

// CalculateHabitableZone computes the habitable zone boundaries for a star
// with the given effective temperature (K) and linear luminosity (solar
// units). Returns nil when either input is unusable.
func CalculateHabitableZone(starTeff, starLum float64) *HZBoundaries {
	if starTeff <= 0 || starLum <= 0 {
		return nil
	}

	teff := starTeff
	note := ""
	if teff < teffModelMin || teff > teffModelMax {
		clamped := math.Min(math.Max(teff, teffModelMin), teffModelMax)
		note = fmt.Sprintf("stellar temperature %.0fK outside model range [%.0f, %.0f], boundaries extrapolated from %.0fK",
			teff, teffModelMin, teffModelMax, clamped)
		teff = clamped
	}

	distance := func(c hzCurve) float64 {
		return math.Sqrt(starLum / c.effectiveFlux(teff))
	}

	boundaries := &HZBoundaries{
		RecentVenus:       distance(curveRecentVenus),
		RunawayGreenhouse: distance(curveRunawayGreenhouse),
		MaxGreenhouse:     distance(curveMaxGreenhouse),
		EarlyMars:         distance(curveEarlyMars),
		ModelNote:         note,
	}
	boundaries.Conservative = entity.Band{Inner: boundaries.RunawayGreenhouse, Outer: boundaries.MaxGreenhouse}
	boundaries.Optimistic = entity.Band{Inner: boundaries.RecentVenus, Outer: boundaries.EarlyMars}
	return boundaries
}

// GetHZStatus places a planet relative to its star's habitable zone.
// Returns nil when the zone cannot be computed or the planet has no
// semi-major axis.
func GetHZStatus(p *entity.PlanetRecord) *entity.HZStatus {
	if p.StarTemp == nil || p.StarLum == nil || p.SemiMajorAxis == nil || *p.SemiMajorAxis <= 0 {
		return nil
	}

	boundaries := CalculateHabitableZone(*p.StarTemp, *p.StarLum)
	if boundaries == nil {
		return nil
	}

	a := *p.SemiMajorAxis
	var label string
	switch {
	case a >= boundaries.Conservative.Inner && a <= boundaries.Conservative.Outer:
		label = entity.HZConservative
	case a >= boundaries.Optimistic.Inner && a <= boundaries.Optimistic.Outer:
		label = entity.HZOptimistic
	case a < boundaries.Optimistic.Inner:
		label = entity.HZTooHot
	default:
		label = entity.HZTooCold
	}

	confidence := "high"
	if boundaries.ModelNote != "" {
		confidence = "moderate"
	}

	return &entity.HZStatus{
		Label:        label,
		Confidence:   confidence,
		Conservative: boundaries.Conservative,
		Optimistic:   boundaries.Optimistic,
		ModelNote:    boundaries.ModelNote,
	}
}
