package estimator

import "math"

// defaultMaxCycles is the assumed full battery life for the nonlinear model.
const defaultMaxCycles = 2000

// NonlinearCycleModel estimates SoH with a quadratic cycle-wear curve and
// additive temperature, discharge-depth and C-rate penalties. It ignores the
// resting and fast-charge-event inputs and reads CRate instead.
type NonlinearCycleModel struct{}

// Name returns the registry name of the model.
func (NonlinearCycleModel) Name() string { return "nonlinear" }

// Estimate applies the nonlinear cycle formula.
func (m NonlinearCycleModel) Estimate(in Inputs) Result {
	maxCycles := in.MaxCycles
	if maxCycles == 0 {
		maxCycles = defaultMaxCycles
	}
	x := float64(in.CycleCount) / float64(maxCycles)

	// Quadratic wear: fast early loss plus accelerating tail.
	cycleDeg := 20*x + 10*x*x
	tempEffect := math.Max(0, (in.Temperature-25)*0.2)
	dodEffect := (in.DepthOfDischarge - 60) * 0.05
	cRateEffect := math.Max(0, (in.CRate-1)*2)

	total := cycleDeg + tempEffect + dodEffect + cRateEffect
	soh := math.Max(0, in.InitialCapacity-total)

	res := Result{
		SoH:              soh,
		TotalDegradation: total,
		Impact:           impactShares(cycleDeg, tempEffect, dodEffect, 0, cRateEffect),
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
