package usecase

import (
	"math"
	"sort"

	"exocatalog-service/internal/domain/entity"
	"exocatalog-service/pkg/logger"

	"gonum.org/v1/gonum/stat"
)

// Physical plausibility limits; violations are flagged in the report but
// the records are kept
const (
	maxPlausibleRadius = 100.0    // Earth radii
	maxPlausibleMass   = 100000.0 // Earth masses
	minPlausibleTemp   = 2.0      // Kelvin
	maxPlausibleTemp   = 10000.0
)

// Defaults used when a required field is missing
const (
	defaultRadius = 1.0
	defaultEqTemp = 300.0
)

// Validator normalizes raw mapped records into a dataset every downstream
// computation can assume is well-formed
type Validator struct {
	logger logger.Logger
}

// NewValidator creates a new validator
func NewValidator(logger logger.Logger) *Validator {
	return &Validator{logger: logger}
}

// ValidateAndClean deduplicates by name (first occurrence wins), tallies
// null fields, flags out-of-range values, fills required fields with
// model-based estimates and returns the cleaned set with its report.
func (v *Validator) ValidateAndClean(records []*entity.PlanetRecord) ([]*entity.PlanetRecord, *entity.ValidationReport) {
	report := &entity.ValidationReport{
		TotalInput: len(records),
		NullFields: make(map[string]int),
		Duplicates: make(map[string]int),
	}

	// deduplicate, first occurrence kept
	seen := make(map[string]bool, len(records))
	cleaned := make([]*entity.PlanetRecord, 0, len(records))
	for _, record := range records {
		if seen[record.Name] {
			if report.Duplicates[record.Name] == 0 {
				report.Duplicates[record.Name] = 2
			} else {
				report.Duplicates[record.Name]++
			}
			report.Cleaned++
			continue
		}
		seen[record.Name] = true
		cleaned = append(cleaned, record)
	}

	for _, record := range cleaned {
		v.tallyNulls(record, report)
		v.flagOutOfRange(record, report)
		v.fillDefaults(record)
		if record.Controversial {
			report.Controversial++
		}
	}

	report.TotalOutput = len(cleaned)
	report.Summary = summarize(cleaned)

	v.logger.Info("Validated dataset",
		"input", report.TotalInput,
		"output", report.TotalOutput,
		"duplicatesDropped", report.Cleaned,
		"badValues", len(report.BadValues),
		"controversial", report.Controversial)

	return cleaned, report
}

func (v *Validator) tallyNulls(record *entity.PlanetRecord, report *entity.ValidationReport) {
	checks := map[string]*float64{
		"distance":      record.Distance,
		"radius":        record.Radius,
		"mass":          record.Mass,
		"eqTemp":        record.EqTemp,
		"period":        record.Period,
		"semiMajorAxis": record.SemiMajorAxis,
	}
	for field, value := range checks {
		if value == nil {
			report.NullFields[field]++
		}
	}
}

func (v *Validator) flagOutOfRange(record *entity.PlanetRecord, report *entity.ValidationReport) {
	flag := func(field string, value float64) {
		report.BadValues = append(report.BadValues, entity.BadValue{
			Name:  record.Name,
			Field: field,
			Value: value,
		})
	}

	if record.Radius != nil && (*record.Radius <= 0 || *record.Radius > maxPlausibleRadius) {
		flag("radius", *record.Radius)
	}
	if record.Mass != nil && (*record.Mass <= 0 || *record.Mass > maxPlausibleMass) {
		flag("mass", *record.Mass)
	}
	if record.Distance != nil && *record.Distance <= 0 {
		flag("distance", *record.Distance)
	}
	if record.EqTemp != nil && (*record.EqTemp < minPlausibleTemp || *record.EqTemp > maxPlausibleTemp) {
		flag("eqTemp", *record.EqTemp)
	}
}

// fillDefaults guarantees the fields the rest of the system relies on
func (v *Validator) fillDefaults(record *entity.PlanetRecord) {
	if record.Distance == nil {
		record.Distance = entity.Float(0)
	}
	if record.Radius == nil {
		record.Radius = entity.Float(defaultRadius)
	}
	if record.Mass == nil {
		// rho-scaling estimate from radius
		radius := *record.Radius
		if radius > 4 {
			record.Mass = entity.Float(radius * 5)
		} else {
			record.Mass = entity.Float(math.Pow(radius, 2.5))
		}
	}
	if record.EqTemp == nil {
		if record.StarLum != nil && *record.StarLum > 0 &&
			record.SemiMajorAxis != nil && *record.SemiMajorAxis > 0 {
			temp := 278 * math.Pow(*record.StarLum, 0.25) / math.Sqrt(*record.SemiMajorAxis)
			record.EqTemp = entity.Float(math.Round(temp))
			record.EqTempEstimated = true
		} else {
			record.EqTemp = entity.Float(defaultEqTemp)
		}
	}
	if record.Period == nil {
		record.Period = entity.Float(0)
	}
	if record.SemiMajorAxis == nil {
		record.SemiMajorAxis = entity.Float(0)
	}
}

// summarize computes the dataset-level statistics carried by the report
func summarize(records []*entity.PlanetRecord) *entity.SummaryStats {
	if len(records) == 0 {
		return nil
	}

	var radii, masses, temps, distances []float64
	methods := make(map[string]bool)
	earliest, latest := 0, 0
	for _, record := range records {
		radii = append(radii, entity.Deref(record.Radius))
		masses = append(masses, entity.Deref(record.Mass))
		temps = append(temps, entity.Deref(record.EqTemp))
		distances = append(distances, entity.Deref(record.Distance))
		if record.DiscoveryMethod != "" {
			methods[record.DiscoveryMethod] = true
		}
		if record.Discovered != nil {
			year := *record.Discovered
			if earliest == 0 || year < earliest {
				earliest = year
			}
			if year > latest {
				latest = year
			}
		}
	}

	methodList := make([]string, 0, len(methods))
	for method := range methods {
		methodList = append(methodList, method)
	}
	sort.Strings(methodList)

	return &entity.SummaryStats{
		MedianRadius:     median(radii),
		MedianMass:       median(masses),
		MedianTemp:       median(temps),
		MedianDistance:   median(distances),
		DiscoveryMethods: methodList,
		EarliestYear:     earliest,
		LatestYear:       latest,
	}
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
