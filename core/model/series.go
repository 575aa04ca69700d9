package model

import "time"

// SohPoint is one sample of a state-of-health history series.
type SohPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// SocPoint is one sample of a state-of-charge history series.
type SocPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// DegradationPoint relates accumulated cycles to remaining capacity.
// Points beyond the vehicle's current cycle count carry IsPrediction.
type DegradationPoint struct {
	Cycles       int     `json:"cycles"`
	Capacity     float64 `json:"capacity"`
	IsPrediction bool    `json:"is_prediction,omitempty"`
}

// ThermalPoint is one sample of a pack temperature history series.
type ThermalPoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
}

// CyclePoint is one sample of an accumulated charge-cycle series.
type CyclePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Cycles    int       `json:"cycles"`
}

// CorrelationPoint is one synthetic sample relating an independent
// stressor variable to a derived SoH value. Not time-ordered.
type CorrelationPoint struct {
	X   float64 `json:"x"`
	SoH float64 `json:"soh"`
}

// ThermalMapSize is the fixed edge length of the spatial thermal grid.
const ThermalMapSize = 5

// ThermalMap is a spatial temperature grid across the battery pack,
// row-major, ThermalMapSize x ThermalMapSize.
type ThermalMap [ThermalMapSize][ThermalMapSize]float64
