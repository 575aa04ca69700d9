package fleetgen

// depotProfile is the per-depot uniform distribution for generated base
// values: each field is drawn from [base, base+spread).
type depotProfile struct {
	sohBase, sohSpread   float64
	tempBase, tempSpread float64
	socBase, socSpread   float64
}

// depotProfiles maps each built-in depot to its statistical profile.
// Unknown depots fall back to defaultProfile.
var depotProfiles = map[string]depotProfile{
	// Higher SoH, normal temps, higher SoC.
	"North Depot": {85, 15, 25, 10, 50, 40},
	// Moderate SoH, higher temps.
	"South Depot": {70, 20, 35, 10, 50, 40},
	// Wide SoH range, normal temps.
	"East Depot": {60, 25, 27, 8, 40, 50},
	// Good SoH, normal temps, wide SoC.
	"West Depot": {75, 20, 28, 7, 30, 60},
	// Very wide SoH range, higher temps, wide SoC.
	"Central Depot": {55, 35, 30, 15, 20, 70},
	// Higher SoH, climate-controlled temps, higher SoC.
	"Metro Depot": {80, 15, 25, 5, 60, 30},
}

var defaultProfile = depotProfile{70, 20, 30, 10, 50, 40}

func profileFor(depot string) depotProfile {
	if p, ok := depotProfiles[depot]; ok {
		return p
	}
	return defaultProfile
}
