package estimator

import (
	"fmt"
	"math"
)

// LinearStressorModel estimates SoH as a linear base degradation per cycle,
// scaled by temperature and discharge-depth factors, plus independent
// calendar-aging and fast-charge terms.
type LinearStressorModel struct{}

// Name returns the registry name of the model.
func (LinearStressorModel) Name() string { return "linear" }

// Estimate applies the linear stressor formula.
func (m LinearStressorModel) Estimate(in Inputs) Result {
	// Base degradation: 0.015% per completed cycle.
	cycleDeg := float64(in.CycleCount) * 0.015

	// Every 10°C above the 25°C baseline adds 20% more cycle degradation.
	tempFactor := 0.0
	if in.Temperature > 25 {
		tempFactor = ((in.Temperature - 25) / 10) * 0.2
	}
	tempDeg := cycleDeg * tempFactor

	// DoD above 80% accelerates wear; staying below 50% is beneficial.
	dischargeFactor := 0.0
	switch {
	case in.DepthOfDischarge > 80:
		dischargeFactor = 0.3
	case in.DepthOfDischarge < 50:
		dischargeFactor = -0.15
	}
	dischargeDeg := cycleDeg * dischargeFactor

	// Calendar aging: 0.2% per 10 days resting above 80% SoC.
	restingDeg := (in.RestingDays / 10) * 0.2

	// Each fast-charge event adds 0.05%.
	chargingDeg := float64(in.FastChargeEvents) * 0.05

	total := cycleDeg + tempDeg + dischargeDeg + restingDeg + chargingDeg
	soh := math.Max(in.InitialCapacity-total, 0)

	res := Result{
		SoH:              soh,
		TotalDegradation: total,
		Impact:           impactShares(cycleDeg, tempDeg, dischargeDeg, restingDeg, chargingDeg),
	}

	months := estimatedUsageMonths(in.CycleCount)
	if months == 0 {
		res.Lifetime = "unknown"
		return res
	}
	res.MonthlyRate = total / months
	res.RateValid = true
	res.Lifetime = lifetimeTo70(soh, months, res.MonthlyRate)
	return res
}

// impactShares converts signed degradation terms into percentage shares of
// the total absolute impact.
func impactShares(cycles, temp, discharge, resting, charging float64) ImpactFactors {
	total := math.Abs(cycles) + math.Abs(temp) + math.Abs(discharge) +
		math.Abs(resting) + math.Abs(charging)
	if total == 0 {
		return ImpactFactors{}
	}
	return ImpactFactors{
		Cycles:      math.Abs(cycles) / total * 100,
		Temperature: math.Abs(temp) / total * 100,
		Discharge:   math.Abs(discharge) / total * 100,
		Resting:     math.Abs(resting) / total * 100,
		Charging:    math.Abs(charging) / total * 100,
	}
}

// lifetimeTo70 projects total service months until SoH reaches the 70%
// end-of-life threshold. A non-positive rate means no measurable decline,
// which has no finite projection.
func lifetimeTo70(soh, elapsedMonths, monthlyRate float64) string {
	if monthlyRate <= 0 {
		return "unknown"
	}
	remaining := (soh - 70) / monthlyRate
	return fmt.Sprintf("%d months", int(math.Round(elapsedMonths+remaining)))
}
