package science

import "exocatalog-service/internal/domain/entity"

// methodAliases normalizes archive spellings to canonical method names
var methodAliases = map[string]string{
	"Imaging":                       "Direct Imaging",
	"Pulsar Timing":                 "Timing",
	"Pulsation Timing Variations":   "Timing",
	"Transit Timing Variations":     "Timing",
	"Eclipse Timing Variations":     "Timing",
	"Orbital Brightness Modulation": "Brightness Modulation",
}

var methodCatalog = map[string]entity.DiscoveryMethodInfo{
	"Transit": {
		Name:        "Transit",
		Description: "Detects the periodic dimming of a star as a planet crosses its disk",
		FirstUsed:   1999,
	},
	"Radial Velocity": {
		Name:        "Radial Velocity",
		Description: "Measures the star's wobble via Doppler shifts in its spectrum",
		FirstUsed:   1995,
	},
	"Direct Imaging": {
		Name:        "Direct Imaging",
		Description: "Photographs the planet itself by suppressing the star's glare",
		FirstUsed:   2004,
	},
	"Microlensing": {
		Name:        "Microlensing",
		Description: "Catches the gravitational lensing spike a planet adds to a background star",
		FirstUsed:   2004,
	},
	"Timing": {
		Name:        "Timing",
		Description: "Infers planets from deviations in a periodic signal such as pulsar pulses or transit times",
		FirstUsed:   1992,
	},
	"Astrometry": {
		Name:        "Astrometry",
		Description: "Tracks the star's tiny positional shift on the sky",
		FirstUsed:   2013,
	},
	"Brightness Modulation": {
		Name:        "Brightness Modulation",
		Description: "Detects phase-dependent brightness changes of a close-in planet and its star",
		FirstUsed:   2011,
	},
	"Disk Kinematics": {
		Name:        "Disk Kinematics",
		Description: "Infers embedded planets from velocity perturbations in a protoplanetary disk",
		FirstUsed:   2018,
	},
}

// LookupDiscoveryMethod resolves archive method spellings to static
// metadata; unknown methods return nil
func LookupDiscoveryMethod(method string) *entity.DiscoveryMethodInfo {
	if method == "" {
		return nil
	}
	if canonical, ok := methodAliases[method]; ok {
		method = canonical
	}
	if info, ok := methodCatalog[method]; ok {
		out := info
		return &out
	}
	return nil
}
