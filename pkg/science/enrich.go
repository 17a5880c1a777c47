package science

import "exocatalog-service/internal/domain/entity"

// EnrichPlanet attaches all derived science fields to a cleaned record in
// one pass. Every derived field is a pure function of the base fields, so
// the call is idempotent.
func EnrichPlanet(p *entity.PlanetRecord) {
	p.Type = ClassifyPlanet(p)
	p.Atmosphere = EstimateAtmosphere(p.Name, p.Type)
	p.HZStatus = GetHZStatus(p)
	p.Habitability = HabitabilityScore(p, p.HZStatus)
	p.ESI = CalculateESI(p)

	if p.RA != nil && p.Dec != nil {
		p.Coords = FormatCoordinates(*p.RA, *p.Dec)
		p.Constellation = LookupConstellation(*p.RA, *p.Dec)
		p.Observability = GetObservability(*p.RA, *p.Dec)
	} else {
		p.Coords = nil
		p.Constellation = ""
		p.Observability = nil
	}

	if p.VMag != nil {
		p.MagnitudeGuidance = GetMagnitudeGuidance(*p.VMag)
	} else {
		p.MagnitudeGuidance = nil
	}

	p.DiscoveryMethodInfo = LookupDiscoveryMethod(p.DiscoveryMethod)
}

// EnrichAll enriches a full dataset in place
func EnrichAll(records []*entity.PlanetRecord) {
	for _, record := range records {
		EnrichPlanet(record)
	}
}
