package science

import (
	"math"

	"exocatalog-service/internal/domain/entity"
)

// Earth reference values for the ESI components. Temperature is the
// equilibrium temperature, not the surface temperature, so Earth's
// reference is 255K.
const (
	earthRadius  = 1.0
	earthDensity = 1.0
	earthEscVel  = 1.0
	earthEqTemp  = 255.0
)

// Literature weights for the four ESI components
const (
	weightRadius  = 0.57
	weightDensity = 1.07
	weightEscVel  = 0.70
	weightTemp    = 5.58
)

// esiComponent scores one quantity against its Earth reference:
// (1 - |x - ref| / (x + ref))^weight, always in [0, 1] for x >= 0
func esiComponent(x, ref, weight float64) float64 {
	if x+ref == 0 {
		return 0
	}
	base := 1 - math.Abs(x-ref)/(x+ref)
	if base < 0 {
		base = 0
	}
	return math.Pow(base, weight)
}

// geometricMean returns the geometric mean of the non-nil values; nil
// components are skipped, not zeroed
func geometricMean(values ...*float64) float64 {
	product := 1.0
	n := 0
	for _, v := range values {
		if v == nil {
			continue
		}
		product *= *v
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Pow(product, 1/float64(n))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// CalculateESI computes the Earth Similarity Index breakdown for a planet.
// Radius and equilibrium temperature are required; without them the result
// carries a zero global score and an explanatory note. Density and escape
// velocity are estimated from mass and radius when not directly known.
func CalculateESI(p *entity.PlanetRecord) *entity.ESIResult {
	if p.Radius == nil || *p.Radius <= 0 || p.EqTemp == nil {
		return &entity.ESIResult{
			Global:     0,
			Confidence: "low",
			Note:       "radius or equilibrium temperature unavailable",
		}
	}

	radius := *p.Radius
	radiusComp := esiComponent(radius, earthRadius, weightRadius)
	tempComp := esiComponent(*p.EqTemp, earthEqTemp, weightTemp)

	var densityComp, escVelComp *float64
	if p.Mass != nil && *p.Mass > 0 {
		density := *p.Mass / (radius * radius * radius) // Earth densities
		escVel := math.Sqrt(*p.Mass / radius)           // Earth escape velocities
		densityComp = entity.Float(esiComponent(density, earthDensity, weightDensity))
		escVelComp = entity.Float(esiComponent(escVel, earthEscVel, weightEscVel))
	}

	result := &entity.ESIResult{
		Global:    round3(geometricMean(&radiusComp, densityComp, escVelComp, &tempComp)),
		Interior:  round3(geometricMean(&radiusComp, densityComp)),
		Surface:   round3(geometricMean(escVelComp, &tempComp)),
		Radius:    entity.Float(round3(radiusComp)),
		Density:   roundPtr(densityComp),
		EscapeVel: roundPtr(escVelComp),
		Temp:      entity.Float(round3(tempComp)),
	}

	if p.Mass != nil && !p.EqTempEstimated {
		result.Confidence = "high"
	} else {
		result.Confidence = "moderate"
	}
	return result
}

func roundPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return entity.Float(round3(*v))
}
