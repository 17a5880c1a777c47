package science

import (
	"hash/fnv"
	"math"

	"exocatalog-service/internal/domain/entity"
)

// Planet type labels
const (
	TypeSubEarth    = "Sub-Earth"
	TypeTerrestrial = "Terrestrial"
	TypeLavaWorld   = "Lava World"
	TypeSuperEarth  = "Super-Earth"
	TypeMiniNeptune = "Mini-Neptune"
	TypeNeptuneLike = "Neptune-like"
	TypeGasGiant    = "Gas Giant"
	TypeHotJupiter  = "Hot Jupiter"
)

// ClassifyPlanet assigns a type from radius and equilibrium temperature.
// Requires a cleaned record (radius and eqTemp non-nil).
func ClassifyPlanet(p *entity.PlanetRecord) string {
	radius := entity.Deref(p.Radius)
	temp := entity.Deref(p.EqTemp)

	switch {
	case radius < 0.5:
		return TypeSubEarth
	case radius <= 1.25:
		if temp > 1000 {
			return TypeLavaWorld
		}
		return TypeTerrestrial
	case radius <= 2.0:
		return TypeSuperEarth
	case radius <= 4.0:
		return TypeMiniNeptune
	case radius <= 6.0:
		return TypeNeptuneLike
	default:
		if temp > 1000 {
			return TypeHotJupiter
		}
		return TypeGasGiant
	}
}

// atmosphereTemplates lists plausible dominant gases per planet type; the
// base percentages are perturbed per planet and re-normalized to 100
var atmosphereTemplates = map[string][]entity.GasFraction{
	TypeSubEarth:    {{Gas: "CO2", Percentage: 60}, {Gas: "N2", Percentage: 30}, {Gas: "Ar", Percentage: 10}},
	TypeTerrestrial: {{Gas: "N2", Percentage: 65}, {Gas: "CO2", Percentage: 25}, {Gas: "H2O", Percentage: 10}},
	TypeLavaWorld:   {{Gas: "SiO", Percentage: 45}, {Gas: "Na", Percentage: 30}, {Gas: "O2", Percentage: 25}},
	TypeSuperEarth:  {{Gas: "N2", Percentage: 50}, {Gas: "CO2", Percentage: 30}, {Gas: "H2O", Percentage: 20}},
	TypeMiniNeptune: {{Gas: "H2", Percentage: 60}, {Gas: "He", Percentage: 25}, {Gas: "CH4", Percentage: 15}},
	TypeNeptuneLike: {{Gas: "H2", Percentage: 70}, {Gas: "He", Percentage: 20}, {Gas: "CH4", Percentage: 10}},
	TypeGasGiant:    {{Gas: "H2", Percentage: 85}, {Gas: "He", Percentage: 13}, {Gas: "CH4", Percentage: 2}},
	TypeHotJupiter:  {{Gas: "H2", Percentage: 88}, {Gas: "He", Percentage: 11}, {Gas: "Na", Percentage: 1}},
}

// EstimateAtmosphere builds a plausible atmosphere mix for the planet's
// type. The perturbation is seeded from the planet name so repeated calls
// return the same composition; percentages are normalized to sum to 100.
func EstimateAtmosphere(name, planetType string) []entity.GasFraction {
	template, ok := atmosphereTemplates[planetType]
	if !ok {
		template = atmosphereTemplates[TypeTerrestrial]
	}

	hasher := fnv.New32a()
	hasher.Write([]byte(name))
	seed := hasher.Sum32()

	mix := make([]entity.GasFraction, len(template))
	total := 0.0
	for i, gas := range template {
		// deterministic jitter in [-5, +5) percentage points
		jitter := float64((seed>>(uint(i)*8))%100)/10.0 - 5.0
		pct := math.Max(gas.Percentage+jitter, 0.5)
		mix[i] = entity.GasFraction{Gas: gas.Gas, Percentage: pct}
		total += pct
	}
	for i := range mix {
		mix[i].Percentage = math.Round(mix[i].Percentage/total*1000) / 10
	}
	return mix
}

// HabitabilityScore composes temperature, size and habitable-zone placement
// into one 0-1 score
func HabitabilityScore(p *entity.PlanetRecord, hz *entity.HZStatus) float64 {
	temp := entity.Deref(p.EqTemp)
	radius := entity.Deref(p.Radius)

	tempFactor := clamp01(1 - math.Abs(temp-288)/500)
	radiusFactor := clamp01(1 - math.Abs(radius-1)/3)

	score := 0.45*tempFactor + 0.25*radiusFactor
	if hz != nil {
		switch hz.Label {
		case entity.HZConservative:
			score += 0.30
		case entity.HZOptimistic:
			score += 0.20
		}
	}
	return round3(clamp01(score))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
