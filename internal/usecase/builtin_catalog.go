package usecase

import (
	"fmt"
	"math"

	"exocatalog-service/internal/domain/entity"
)

// curatedSpec is a compact literal form for the bundled well-known planets
type curatedSpec struct {
	name, system       string
	radius, mass       float64
	period, sma        float64
	eqTemp             float64
	distance           float64 // light-years
	starType           string
	starTemp, starMass float64
	starLumLog         float64
	ra, dec, vMag      float64
	discovered         int
	method, facility   string
}

// Well-known confirmed planets used when neither the archive nor a cache
// is available. Values are approximate literature values.
var curatedPlanets = []curatedSpec{
	{"Proxima Cen b", "Proxima Cen", 1.07, 1.27, 11.19, 0.0485, 234, 4.24, "M5.5V", 3050, 0.122, -2.58, 217.39, -62.68, 11.13, 2016, "Radial Velocity", "La Silla Observatory"},
	{"TRAPPIST-1 b", "TRAPPIST-1", 1.12, 1.02, 1.51, 0.0115, 400, 40.7, "M8V", 2566, 0.089, -3.26, 346.62, -5.04, 18.8, 2016, "Transit", "TRAPPIST"},
	{"TRAPPIST-1 e", "TRAPPIST-1", 0.92, 0.69, 6.10, 0.0293, 251, 40.7, "M8V", 2566, 0.089, -3.26, 346.62, -5.04, 18.8, 2017, "Transit", "Spitzer Space Telescope"},
	{"TRAPPIST-1 f", "TRAPPIST-1", 1.04, 1.04, 9.21, 0.0385, 219, 40.7, "M8V", 2566, 0.089, -3.26, 346.62, -5.04, 18.8, 2017, "Transit", "Spitzer Space Telescope"},
	{"TRAPPIST-1 g", "TRAPPIST-1", 1.13, 1.32, 12.35, 0.0468, 199, 40.7, "M8V", 2566, 0.089, -3.26, 346.62, -5.04, 18.8, 2017, "Transit", "Spitzer Space Telescope"},
	{"Kepler-452 b", "Kepler-452", 1.63, 5.0, 384.84, 1.046, 265, 1800, "G2V", 5757, 1.04, 0.08, 291.26, 44.28, 13.43, 2015, "Transit", "Kepler"},
	{"Kepler-186 f", "Kepler-186", 1.17, 1.71, 129.94, 0.432, 188, 580, "M1V", 3755, 0.54, -1.29, 298.68, 43.96, 14.62, 2014, "Transit", "Kepler"},
	{"Kepler-442 b", "Kepler-442", 1.34, 2.36, 112.31, 0.409, 233, 1194, "K5V", 4402, 0.61, -0.93, 285.38, 39.28, 14.76, 2015, "Transit", "Kepler"},
	{"51 Peg b", "51 Peg", 12.0, 150.0, 4.23, 0.0527, 1260, 50.6, "G2IV", 5768, 1.07, 0.13, 344.37, 20.77, 5.46, 1995, "Radial Velocity", "Haute-Provence Observatory"},
	{"HD 209458 b", "HD 209458", 15.2, 232.0, 3.52, 0.0475, 1449, 159, "G0V", 6091, 1.23, 0.24, 330.79, 18.88, 7.65, 1999, "Transit", "Haute-Provence Observatory"},
	{"55 Cnc e", "55 Cnc", 1.88, 7.99, 0.74, 0.0154, 1958, 41.1, "K0IV-V", 5172, 0.91, -0.20, 133.15, 28.33, 5.95, 2004, "Radial Velocity", "McDonald Observatory"},
	{"GJ 1214 b", "GJ 1214", 2.74, 8.17, 1.58, 0.0149, 596, 47.8, "M4.5V", 3026, 0.18, -2.37, 258.83, 4.96, 14.71, 2009, "Transit", "MEarth Project"},
	{"K2-18 b", "K2-18", 2.61, 8.63, 32.94, 0.159, 255, 124, "M2.5V", 3457, 0.36, -1.63, 172.56, 7.59, 13.5, 2015, "Transit", "K2"},
	{"TOI-700 d", "TOI-700", 1.07, 1.57, 37.42, 0.163, 269, 101, "M2V", 3459, 0.42, -1.60, 97.10, -65.58, 13.1, 2020, "Transit", "TESS"},
	{"LHS 1140 b", "LHS 1140", 1.73, 5.60, 24.74, 0.0957, 226, 48.8, "M4.5V", 2988, 0.18, -2.36, 11.25, -15.27, 14.15, 2017, "Transit", "MEarth Project"},
}

func (spec curatedSpec) record() *entity.PlanetRecord {
	return &entity.PlanetRecord{
		Name:              spec.name,
		System:            spec.system,
		Radius:            entity.Float(spec.radius),
		Mass:              entity.Float(spec.mass),
		Period:            entity.Float(spec.period),
		SemiMajorAxis:     entity.Float(spec.sma),
		EqTemp:            entity.Float(spec.eqTemp),
		Distance:          entity.Float(spec.distance),
		StarType:          spec.starType,
		StarTemp:          entity.Float(spec.starTemp),
		StarMass:          entity.Float(spec.starMass),
		StarLum:           entity.Float(math.Pow(10, spec.starLumLog)),
		StarLumLog:        entity.Float(spec.starLumLog),
		RA:                entity.Float(spec.ra),
		Dec:               entity.Float(spec.dec),
		VMag:              entity.Float(spec.vMag),
		Discovered:        entity.Int(spec.discovered),
		DiscoveryMethod:   spec.method,
		DiscoveryFacility: spec.facility,
		Source:            entity.SourceBuiltinFallback,
		Curated:           true,
	}
}

// builtinSeed fixes the procedural stream so every run pads the demo
// catalog with the same synthetic planets
const builtinSeed = 0x9E3779B97F4A7C15

// xorshift64 is the deterministic PRNG behind the procedural catalog
type xorshift64 struct {
	state uint64
}

func (r *xorshift64) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a deterministic value in [0, 1)
func (r *xorshift64) float() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// between returns a deterministic value in [lo, hi)
func (r *xorshift64) between(lo, hi float64) float64 {
	return lo + r.float()*(hi-lo)
}

var syntheticStarTypes = []struct {
	class  string
	temp   [2]float64
	lumLog [2]float64
	mass   [2]float64
}{
	{"M", [2]float64{2600, 3800}, [2]float64{-3.0, -1.2}, [2]float64{0.1, 0.55}},
	{"K", [2]float64{3900, 5200}, [2]float64{-1.1, -0.2}, [2]float64{0.55, 0.85}},
	{"G", [2]float64{5300, 6000}, [2]float64{-0.2, 0.2}, [2]float64{0.85, 1.1}},
	{"F", [2]float64{6100, 7200}, [2]float64{0.2, 0.7}, [2]float64{1.1, 1.5}},
}

// BuiltinCatalog returns the bundled fallback dataset: the curated planets
// plus count procedurally generated ones. Output is deterministic and the
// records are already cleaned (all required fields set).
func BuiltinCatalog(count int) []*entity.PlanetRecord {
	records := make([]*entity.PlanetRecord, 0, len(curatedPlanets)+count)
	for _, spec := range curatedPlanets {
		records = append(records, spec.record())
	}

	rng := &xorshift64{state: builtinSeed}
	for i := 0; i < count; i++ {
		records = append(records, syntheticPlanet(rng, i))
	}
	return records
}

func syntheticPlanet(rng *xorshift64, index int) *entity.PlanetRecord {
	star := syntheticStarTypes[rng.next()%uint64(len(syntheticStarTypes))]
	starTemp := math.Round(rng.between(star.temp[0], star.temp[1]))
	starLumLog := rng.between(star.lumLog[0], star.lumLog[1])
	starLum := math.Pow(10, starLumLog)
	starMass := rng.between(star.mass[0], star.mass[1])

	radius := rng.between(0.5, 14)
	var mass float64
	if radius > 4 {
		mass = radius * rng.between(4, 20)
	} else {
		mass = math.Pow(radius, 2.5) * rng.between(0.8, 1.2)
	}

	sma := rng.between(0.02, 3.5)
	period := 365.25 * math.Sqrt(sma*sma*sma/starMass)
	eqTemp := math.Round(278 * math.Pow(starLum, 0.25) / math.Sqrt(sma))

	system := fmt.Sprintf("EXC-%d", 1000+index)
	return &entity.PlanetRecord{
		Name:            fmt.Sprintf("%s b", system),
		System:          system,
		Radius:          entity.Float(math.Round(radius*100) / 100),
		Mass:            entity.Float(math.Round(mass*100) / 100),
		Period:          entity.Float(math.Round(period*100) / 100),
		SemiMajorAxis:   entity.Float(math.Round(sma*1000) / 1000),
		EqTemp:          entity.Float(eqTemp),
		EqTempEstimated: true,
		Distance:        entity.Float(math.Round(rng.between(10, 3000))),
		StarType:        fmt.Sprintf("%sV", star.class),
		StarTemp:        entity.Float(starTemp),
		StarMass:        entity.Float(math.Round(starMass*100) / 100),
		StarLum:         entity.Float(starLum),
		StarLumLog:      entity.Float(starLumLog),
		RA:              entity.Float(math.Round(rng.between(0, 360)*100) / 100),
		Dec:             entity.Float(math.Round(rng.between(-85, 85)*100) / 100),
		VMag:            entity.Float(math.Round(rng.between(8, 18)*10) / 10),
		Discovered:      entity.Int(2009 + int(rng.next()%17)),
		DiscoveryMethod: "Transit",
		Source:          entity.SourceBuiltinFallback,
	}
}
