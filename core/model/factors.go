package model

// ImpactLevel grades how strongly a stressor affects battery health.
type ImpactLevel string

const (
	ImpactNone   ImpactLevel = "none"
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// StressorCount pairs a stressor event counter with its graded impact.
type StressorCount struct {
	Count  int         `json:"count"`
	Impact ImpactLevel `json:"impact"`
}

// StressorHours pairs accumulated stressor hours with its graded impact.
type StressorHours struct {
	Hours  int         `json:"hours"`
	Impact ImpactLevel `json:"impact"`
}

// HealthFactors summarises the discrete stressors recorded for a vehicle.
// Display data only; it feeds the detail panel, not the estimators.
type HealthFactors struct {
	DeepDischarges  StressorCount `json:"deep_discharges"`
	HighChargeRates StressorCount `json:"high_charge_rates"`
	HighTemperature StressorCount `json:"high_temperature"`
	SocExtremes     StressorCount `json:"soc_extremes"`
	HighSocResting  StressorHours `json:"high_soc_resting"`
}
