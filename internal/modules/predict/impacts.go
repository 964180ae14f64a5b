// README: Illustrative feature-impact percentages shown alongside a prediction.
package predict

// The numbers below are explanatory labels for the UI, independent of
// the forests' actual weighting. Distance is pinned; the other three
// move with the request context.
const (
	distanceImpactPct = 38
	baseImpactPct     = 5
	rushHourTimePct   = 25
	moderateTimePct   = 15
	rainImpactBump    = 10
	surgeImpactBump   = 15
	impactCapPct      = 40
)

func featureImpacts(hour int, isRainy, surgeApplied bool) Impacts {
	timeOfDay := baseImpactPct
	switch {
	case (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19):
		timeOfDay = rushHourTimePct
	case (hour >= 10 && hour <= 11) || (hour >= 12 && hour <= 16) || (hour >= 20 && hour <= 21):
		timeOfDay = moderateTimePct
	}

	demand := baseImpactPct
	locSituation := baseImpactPct
	if isRainy {
		demand += rainImpactBump
		locSituation += rainImpactBump
	}
	if surgeApplied {
		demand += surgeImpactBump
		locSituation += surgeImpactBump
	}
	if demand > impactCapPct {
		demand = impactCapPct
	}
	if locSituation > impactCapPct {
		locSituation = impactCapPct
	}

	return Impacts{
		Distance:          distanceImpactPct,
		TimeOfDay:         timeOfDay,
		DemandLevel:       demand,
		LocationSituation: locSituation,
	}
}
