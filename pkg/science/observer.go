package science

import (
	"fmt"
	"math"

	"exocatalog-service/internal/domain/entity"
)

// FormatCoordinates renders equatorial degrees as sexagesimal strings
func FormatCoordinates(raDeg, decDeg float64) *entity.Coordinates {
	raHours := raDeg / 15.0
	rh := int(raHours)
	rm := int((raHours - float64(rh)) * 60)
	rs := ((raHours-float64(rh))*60 - float64(rm)) * 60

	sign := "+"
	dec := decDeg
	if dec < 0 {
		sign = "-"
		dec = -dec
	}
	dd := int(dec)
	dm := int((dec - float64(dd)) * 60)
	ds := ((dec-float64(dd))*60 - float64(dm)) * 60

	return &entity.Coordinates{
		RA:     fmt.Sprintf("%02dh %02dm %04.1fs", rh, rm, rs),
		Dec:    fmt.Sprintf("%s%02d° %02d' %04.1f\"", sign, dd, dm, ds),
		RADeg:  raDeg,
		DecDeg: decDeg,
	}
}

// constellationRegion is a simplified rectangular patch of sky. RA bounds
// are in hours; a region with raMin > raMax wraps across 0h.
type constellationRegion struct {
	name           string
	raMin, raMax   float64
	decMin, decMax float64
}

var constellationRegions = []constellationRegion{
	{"Andromeda", 22.5, 2.5, 20, 50},
	{"Aquarius", 20.5, 23.5, -25, 3},
	{"Aquila", 18.5, 20.5, -12, 18},
	{"Aries", 1.5, 3.5, 10, 30},
	{"Auriga", 4.5, 7.5, 30, 55},
	{"Bootes", 13.5, 15.5, 5, 55},
	{"Cancer", 7.9, 9.3, 5, 33},
	{"Canis Major", 6.0, 7.5, -33, -11},
	{"Capricornus", 20.0, 22.0, -28, -8},
	{"Cassiopeia", 22.9, 3.4, 45, 78},
	{"Centaurus", 11.0, 15.0, -65, -30},
	{"Cetus", 23.9, 3.4, -25, 10},
	{"Corona Borealis", 15.2, 16.4, 25, 40},
	{"Crux", 11.9, 12.9, -65, -55},
	{"Cygnus", 19.2, 22.0, 27, 62},
	{"Delphinus", 20.2, 21.2, 2, 21},
	{"Draco", 11.5, 20.5, 50, 86},
	{"Gemini", 5.9, 8.1, 10, 35},
	{"Hercules", 15.8, 18.9, 4, 51},
	{"Leo", 9.3, 11.9, -6, 33},
	{"Libra", 14.3, 16.0, -30, 0},
	{"Lyra", 18.2, 19.4, 25, 48},
	{"Ophiuchus", 16.0, 18.7, -30, 14},
	{"Orion", 4.7, 6.4, -11, 23},
	{"Pegasus", 21.1, 0.3, 2, 36},
	{"Perseus", 1.5, 4.8, 31, 59},
	{"Pisces", 22.8, 2.1, -6, 33},
	{"Sagittarius", 17.7, 20.4, -45, -12},
	{"Scorpius", 15.8, 17.9, -45, -8},
	{"Taurus", 3.4, 6.0, 0, 31},
	{"Ursa Major", 8.1, 14.5, 28, 73},
	{"Ursa Minor", 13.0, 18.0, 65, 90},
	{"Vela", 8.0, 11.0, -57, -37},
	{"Virgo", 11.6, 15.2, -22, 14},
}

func (r constellationRegion) contains(raHours, dec float64) bool {
	if dec < r.decMin || dec > r.decMax {
		return false
	}
	if r.raMin <= r.raMax {
		return raHours >= r.raMin && raHours <= r.raMax
	}
	// wraps across 0h
	return raHours >= r.raMin || raHours <= r.raMax
}

func (r constellationRegion) center() (float64, float64) {
	raSpan := r.raMax - r.raMin
	if r.raMin > r.raMax {
		raSpan += 24
	}
	ra := math.Mod(r.raMin+raSpan/2, 24)
	return ra, (r.decMin + r.decMax) / 2
}

// circularHourDistance is the shortest separation of two RA values in hours
func circularHourDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 12 {
		d = 24 - d
	}
	return d
}

// LookupConstellation finds the constellation containing the coordinates;
// the first matching region wins. When no region contains the point the
// nearest region center is used.
func LookupConstellation(raDeg, decDeg float64) string {
	raHours := math.Mod(raDeg/15.0+24, 24)

	for _, region := range constellationRegions {
		if region.contains(raHours, decDeg) {
			return region.name
		}
	}

	best := constellationRegions[0].name
	bestDist := math.MaxFloat64
	for _, region := range constellationRegions {
		cra, cdec := region.center()
		// RA separation in degrees, shrunk by declination
		dra := circularHourDistance(raHours, cra) * 15 * math.Cos(decDeg*math.Pi/180)
		ddec := decDeg - cdec
		dist := dra*dra + ddec*ddec
		if dist < bestDist {
			bestDist = dist
			best = region.name
		}
	}
	return best
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Approximate solar RA (hours) at mid-month, anchored to RA 0h at the
// March equinox
var midMonthSolarRA = []float64{
	19.7, 21.8, 23.6, 1.6, 3.6, 5.7, 7.6, 9.7, 11.7, 13.7, 15.7, 17.7,
}

// GetObservability determines the best viewing month (when the sun is
// opposite the target in RA), a +/-2 month season, and the hemisphere the
// declination favors
func GetObservability(raDeg, decDeg float64) *entity.Observability {
	raHours := math.Mod(raDeg/15.0+24, 24)
	opposition := math.Mod(raHours+12, 24)

	bestMonth := 0
	bestDist := math.MaxFloat64
	for i, solarRA := range midMonthSolarRA {
		d := circularHourDistance(solarRA, opposition)
		if d < bestDist {
			bestDist = d
			bestMonth = i
		}
	}

	season := make([]string, 0, 5)
	for offset := -2; offset <= 2; offset++ {
		season = append(season, monthNames[((bestMonth+offset)%12+12)%12])
	}

	hemisphere := "Both hemispheres"
	if decDeg > 30 {
		hemisphere = "Northern hemisphere"
	} else if decDeg < -30 {
		hemisphere = "Southern hemisphere"
	}

	return &entity.Observability{
		BestMonth:  monthNames[bestMonth],
		Season:     season,
		Hemisphere: hemisphere,
	}
}

// magnitudeBand is one row of the ordered equipment guidance table
type magnitudeBand struct {
	limit     float64
	band      string
	equipment string
	detail    string
}

var magnitudeBands = []magnitudeBand{
	{1, "Very Bright", "Naked eye", "Visible even from bright urban skies"},
	{3, "Bright", "Naked eye", "Easy naked-eye target from suburbs"},
	{6, "Naked Eye", "Naked eye", "Visible to the naked eye under dark skies"},
	{8, "Binocular", "Binoculars", "Within reach of 10x50 binoculars"},
	{10, "Small Telescope", "60-80mm refractor", "Small telescope target"},
	{12, "Medium Telescope", "150-200mm reflector", "Requires a mid-size amateur telescope"},
	{14, "Large Telescope", "250mm+ aperture", "Large amateur instrument needed"},
	{16, "Advanced Imaging", "CCD/CMOS imaging", "Long-exposure imaging with large amateur gear"},
	{math.Inf(1), "Professional Only", "Observatory-class telescope", "Beyond amateur equipment"},
}

// GetMagnitudeGuidance maps an apparent magnitude to viewing equipment
func GetMagnitudeGuidance(vMag float64) *entity.MagnitudeGuidance {
	for _, band := range magnitudeBands {
		if vMag < band.limit {
			return &entity.MagnitudeGuidance{
				Band:      band.band,
				Equipment: band.equipment,
				Detail:    band.detail,
			}
		}
	}
	last := magnitudeBands[len(magnitudeBands)-1]
	return &entity.MagnitudeGuidance{Band: last.band, Equipment: last.equipment, Detail: last.detail}
}
