package fleetgen

import "fmt"

// Config holds parameters for synthetic fleet generation.
type Config struct {
	// VehicleCount is the number of battery units to generate.
	VehicleCount int `json:"vehicle_count"`
	// Depots lists the depot names vehicles are assigned to. Order matters:
	// assignment draws a uniform index into this slice.
	Depots []string `json:"depots"`
	// Seed feeds the random source. Zero selects a time-based seed, so two
	// runs produce different fleets; fix it for reproducible datasets.
	Seed int64 `json:"seed"`
}

// DefaultDepots returns the six built-in depot names, each with its own
// statistical profile.
func DefaultDepots() []string {
	return []string{
		"North Depot", "South Depot", "East Depot",
		"West Depot", "Central Depot", "Metro Depot",
	}
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.VehicleCount == 0 {
		c.VehicleCount = 300
	}
	if len(c.Depots) == 0 {
		c.Depots = DefaultDepots()
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.VehicleCount <= 0 {
		return fmt.Errorf("vehicle count must be positive")
	}
	if len(c.Depots) == 0 {
		return fmt.Errorf("at least one depot is required")
	}
	return nil
}
