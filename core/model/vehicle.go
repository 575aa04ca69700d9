package model

import "fmt"

// HealthStatus classifies a battery's state of health into display buckets.
type HealthStatus string

const (
	StatusOptimal  HealthStatus = "optimal"
	StatusGood     HealthStatus = "good"
	StatusModerate HealthStatus = "moderate"
	StatusWarning  HealthStatus = "warning"
	StatusCritical HealthStatus = "critical"
)

// HealthStatuses lists all statuses from best to worst.
var HealthStatuses = []HealthStatus{
	StatusOptimal, StatusGood, StatusModerate, StatusWarning, StatusCritical,
}

// ThermalRisk classifies a battery's operating temperature.
type ThermalRisk string

const (
	ThermalSafe     ThermalRisk = "safe"
	ThermalElevated ThermalRisk = "elevated"
	ThermalCaution  ThermalRisk = "caution"
	ThermalWarning  ThermalRisk = "warning"
	ThermalDanger   ThermalRisk = "danger"
)

// ThermalRisks lists all risk levels from coolest to hottest.
var ThermalRisks = []ThermalRisk{
	ThermalSafe, ThermalElevated, ThermalCaution, ThermalWarning, ThermalDanger,
}

// Vehicle represents a single battery unit in the monitored fleet.
// All fields are set at generation time and never mutated; a dataset
// rebuild produces a fresh fleet.
type Vehicle struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	Depot                  string       `json:"depot"`
	SoH                    float64      `json:"soh"`
	SoC                    float64      `json:"soc"`
	Temperature            float64      `json:"temperature"`
	ThermalRisk            ThermalRisk  `json:"thermal_risk"`
	Status                 HealthStatus `json:"status"`
	CycleCount             int          `json:"cycle_count"`
	EstimatedLifeRemaining string       `json:"estimated_life_remaining"`
}

// Validate checks that the vehicle carries sane generated values.
func (v Vehicle) Validate() error {
	if v.ID == "" {
		return fmt.Errorf("vehicle id is required")
	}
	if v.SoH < 0 || v.SoH > 100 {
		return fmt.Errorf("soh %.1f out of range [0,100]", v.SoH)
	}
	if v.SoC < 0 || v.SoC > 100 {
		return fmt.Errorf("soc %.0f out of range [0,100]", v.SoC)
	}
	if v.CycleCount < 0 {
		return fmt.Errorf("cycle count must be non-negative")
	}
	return nil
}
