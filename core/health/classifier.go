// Package health holds the pure battery-health calculations shared by the
// dashboard views: status classification, degradation-rate analysis and
// remaining-life heuristics. All functions are total over real inputs.
package health

import "github.com/kilianp07/fleethealth/core/model"

// SoH thresholds for status classification. Half-open intervals: a value
// exactly on a threshold maps to the better category.
const (
	sohOptimal  = 90
	sohGood     = 80
	sohModerate = 70
	sohWarning  = 60
)

// Temperature thresholds in °C for thermal risk classification.
const (
	tempSafe     = 30
	tempElevated = 35
	tempCaution  = 40
	tempWarning  = 45
)

// ClassifyHealth maps a state-of-health percentage to its status bucket.
// Out-of-range inputs classify via the same thresholds, no clamping.
func ClassifyHealth(soh float64) model.HealthStatus {
	switch {
	case soh >= sohOptimal:
		return model.StatusOptimal
	case soh >= sohGood:
		return model.StatusGood
	case soh >= sohModerate:
		return model.StatusModerate
	case soh >= sohWarning:
		return model.StatusWarning
	default:
		return model.StatusCritical
	}
}

// ClassifyThermal maps an operating temperature in °C to its risk bucket.
func ClassifyThermal(temperature float64) model.ThermalRisk {
	switch {
	case temperature < tempSafe:
		return model.ThermalSafe
	case temperature < tempElevated:
		return model.ThermalElevated
	case temperature < tempCaution:
		return model.ThermalCaution
	case temperature < tempWarning:
		return model.ThermalWarning
	default:
		return model.ThermalDanger
	}
}
