package health

import "github.com/kilianp07/fleethealth/core/model"

// StatusDescription returns the human-readable explanation shown next to a
// status badge.
func StatusDescription(status model.HealthStatus) string {
	switch status {
	case model.StatusOptimal:
		return "Battery is in optimal condition"
	case model.StatusGood:
		return "Battery is in good condition with minimal degradation"
	case model.StatusModerate:
		return "Battery shows moderate degradation but is functioning normally"
	case model.StatusWarning:
		return "Battery health is declining, monitoring recommended"
	case model.StatusCritical:
		return "Battery health is critical, replacement recommended"
	default:
		return "Battery status unknown"
	}
}

// RemainingLife buckets a SoH value into a coarse remaining-useful-life
// estimate. A simplified heuristic for card display, not a degradation model.
func RemainingLife(soh float64) string {
	switch {
	case soh > 95:
		return "4+ years"
	case soh > 90:
		return "3-4 years"
	case soh > 80:
		return "2-3 years"
	case soh > 70:
		return "1-2 years"
	case soh > 60:
		return "6-12 months"
	default:
		return "< 6 months"
	}
}

// HeatLevel buckets a cell temperature for thermal map rendering,
// 0 (coolest) through 5 (hottest).
func HeatLevel(temperature float64) int {
	switch {
	case temperature < 25:
		return 0
	case temperature < 30:
		return 1
	case temperature < 35:
		return 2
	case temperature < 40:
		return 3
	case temperature < 45:
		return 4
	default:
		return 5
	}
}

// GaugeColor returns the hex color used by gauge charts for the given
// percentage value.
func GaugeColor(value float64) string {
	switch {
	case value > 80:
		return "#22c55e"
	case value > 60:
		return "#84cc16"
	case value > 40:
		return "#eab308"
	case value > 20:
		return "#f97316"
	default:
		return "#ef4444"
	}
}
