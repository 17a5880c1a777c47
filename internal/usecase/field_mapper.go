package usecase

import (
	"math"
	"regexp"
	"strings"

	"exocatalog-service/internal/domain/entity"
	"exocatalog-service/pkg/logger"

	"github.com/spf13/cast"
)

// One parsec in light-years
const parsecToLightYears = 3.26156

// planetDesignator matches a trailing single-letter planet suffix ("b".."i")
var planetDesignator = regexp.MustCompile(`\s+[b-i]$`)

// FieldMapper translates raw archive rows into planet records. This is the
// only place that knows the remote column names, so swapping the source
// schema means changing this one component.
type FieldMapper struct {
	logger logger.Logger
}

// NewFieldMapper creates a new field mapper
func NewFieldMapper(logger logger.Logger) *FieldMapper {
	return &FieldMapper{logger: logger}
}

// MapRecord maps one raw row to a PlanetRecord. It is total: missing or
// uncoercible cells become nil fields, never errors.
func (m *FieldMapper) MapRecord(raw map[string]interface{}) *entity.PlanetRecord {
	record := &entity.PlanetRecord{
		Name:              cast.ToString(raw["pl_name"]),
		System:            cast.ToString(raw["hostname"]),
		Radius:            floatField(raw, "pl_rade"),
		Mass:              floatField(raw, "pl_bmasse"),
		Period:            floatField(raw, "pl_orbper"),
		SemiMajorAxis:     floatField(raw, "pl_orbsmax"),
		EqTemp:            roundedField(raw, "pl_eqt"),
		Eccentricity:      floatField(raw, "pl_orbeccen"),
		Inclination:       floatField(raw, "pl_orbincl"),
		StarType:          cast.ToString(raw["st_spectype"]),
		StarTemp:          roundedField(raw, "st_teff"),
		StarMass:          floatField(raw, "st_mass"),
		RA:                floatField(raw, "ra"),
		Dec:               floatField(raw, "dec"),
		VMag:              floatField(raw, "sy_vmag"),
		KMag:              floatField(raw, "sy_kmag"),
		DiscoveryMethod:   cast.ToString(raw["discoverymethod"]),
		DiscoveryFacility: cast.ToString(raw["disc_facility"]),
		DiscoveryRef:      cast.ToString(raw["disc_refname"]),
		Source:            entity.SourceLive,
		NASARaw:           true,
	}

	// distance arrives in parsecs
	if pc := floatField(raw, "sy_dist"); pc != nil {
		record.Distance = entity.Float(*pc * parsecToLightYears)
	}

	// stellar luminosity arrives as log10(L/Lsun); both forms are kept
	if lumLog := floatField(raw, "st_lum"); lumLog != nil {
		record.StarLumLog = lumLog
		record.StarLum = entity.Float(math.Pow(10, *lumLog))
	}

	if year := floatField(raw, "disc_year"); year != nil {
		record.Discovered = entity.Int(int(*year))
	}

	if flag := floatField(raw, "pl_controv_flag"); flag != nil && *flag != 0 {
		record.Controversial = true
	}

	// derive the system name from the planet name when the host is absent
	if record.System == "" && record.Name != "" {
		record.System = strings.TrimSpace(planetDesignator.ReplaceAllString(record.Name, ""))
	}

	return record
}

// MapRecords maps a full raw dataset, skipping rows with no planet name
func (m *FieldMapper) MapRecords(rows []map[string]interface{}) []*entity.PlanetRecord {
	records := make([]*entity.PlanetRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		record := m.MapRecord(row)
		if record.Name == "" {
			skipped++
			continue
		}
		records = append(records, record)
	}
	if skipped > 0 {
		m.logger.Warn("Skipped unnamed rows during mapping", "count", skipped)
	}
	return records
}

// floatField coerces a raw cell to a float pointer; nil or uncoercible
// cells map to nil
func floatField(raw map[string]interface{}, key string) *float64 {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}
	parsed, err := cast.ToFloat64E(value)
	if err != nil {
		return nil
	}
	return entity.Float(parsed)
}

// roundedField is floatField for Kelvin columns, rounded to whole degrees
func roundedField(raw map[string]interface{}, key string) *float64 {
	value := floatField(raw, key)
	if value == nil {
		return nil
	}
	return entity.Float(math.Round(*value))
}
