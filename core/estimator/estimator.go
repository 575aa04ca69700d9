// Package estimator implements the battery health calculator. Two
// independent estimation models ship with the dashboard; they diverge in
// behavior and neither supersedes the other, so callers pick one by name.
package estimator

import "fmt"

// Inputs are the calculator parameters. Ranges mirror the dashboard sliders.
type Inputs struct {
	// InitialCapacity is the rated starting capacity in percent, [70,100].
	InitialCapacity float64 `json:"initial_capacity"`
	// CycleCount is the number of completed charge cycles, [0,2000].
	CycleCount int `json:"cycle_count"`
	// Temperature is the average operating temperature in °C, [5,60].
	Temperature float64 `json:"temperature"`
	// DepthOfDischarge is the average discharge depth in percent, [10,100].
	DepthOfDischarge float64 `json:"depth_of_discharge"`
	// RestingDays counts days spent resting above 80% SoC, [0,180].
	RestingDays float64 `json:"resting_days"`
	// FastChargeEvents counts high charge-rate events, [0,100].
	FastChargeEvents int `json:"fast_charge_events"`
	// CRate is the typical charge rate, used by the nonlinear model only.
	CRate float64 `json:"c_rate,omitempty"`
	// MaxCycles is the assumed full battery life in cycles for the
	// nonlinear model. Zero means the default of 2000.
	MaxCycles int `json:"max_cycles,omitempty"`
}

// Validate checks the inputs against the documented ranges.
func (in Inputs) Validate() error {
	if in.InitialCapacity < 70 || in.InitialCapacity > 100 {
		return fmt.Errorf("initial capacity %.1f out of range [70,100]", in.InitialCapacity)
	}
	if in.CycleCount < 0 || in.CycleCount > 2000 {
		return fmt.Errorf("cycle count %d out of range [0,2000]", in.CycleCount)
	}
	if in.Temperature < 5 || in.Temperature > 60 {
		return fmt.Errorf("temperature %.1f out of range [5,60]", in.Temperature)
	}
	if in.DepthOfDischarge < 10 || in.DepthOfDischarge > 100 {
		return fmt.Errorf("discharge depth %.1f out of range [10,100]", in.DepthOfDischarge)
	}
	if in.RestingDays < 0 || in.RestingDays > 180 {
		return fmt.Errorf("resting days %.1f out of range [0,180]", in.RestingDays)
	}
	if in.FastChargeEvents < 0 || in.FastChargeEvents > 100 {
		return fmt.Errorf("fast charge events %d out of range [0,100]", in.FastChargeEvents)
	}
	if in.CRate < 0 {
		return fmt.Errorf("c-rate must be non-negative")
	}
	if in.MaxCycles < 0 {
		return fmt.Errorf("max cycles must be non-negative")
	}
	return nil
}

// ImpactFactors is the percentage share each stressor contributes to the
// total estimated degradation. Shares are computed over absolute values, so
// a beneficial (negative) discharge term still shows a nonzero magnitude.
// When no degradation occurred all shares are zero; otherwise they sum
// to 100.
type ImpactFactors struct {
	Cycles      float64 `json:"cycles"`
	Temperature float64 `json:"temperature"`
	Discharge   float64 `json:"discharge"`
	Resting     float64 `json:"resting"`
	Charging    float64 `json:"charging"`
}

// Result is a full calculator output.
//
// MonthlyRate is undefined when CycleCount is zero: the usage-time estimate
// (500 cycles per 12 months) collapses and the division has no meaning. In
// that case RateValid is false, MonthlyRate is 0 and Lifetime is "unknown"
// rather than a silent NaN.
type Result struct {
	SoH              float64       `json:"soh"`
	TotalDegradation float64       `json:"total_degradation"`
	MonthlyRate      float64       `json:"monthly_rate"`
	RateValid        bool          `json:"rate_valid"`
	Lifetime         string        `json:"lifetime"`
	Impact           ImpactFactors `json:"impact"`
}

// Model estimates battery state of health from usage inputs.
type Model interface {
	Name() string
	Estimate(in Inputs) Result
}

// ModelByName returns the estimation model registered under name.
func ModelByName(name string) (Model, error) {
	switch name {
	case "", LinearStressorModel{}.Name():
		return LinearStressorModel{}, nil
	case NonlinearCycleModel{}.Name():
		return NonlinearCycleModel{}, nil
	default:
		return nil, fmt.Errorf("unknown estimator model %q", name)
	}
}

// Models lists the available model names.
func Models() []string {
	return []string{LinearStressorModel{}.Name(), NonlinearCycleModel{}.Name()}
}

// cyclesPerMonth is the assumed usage pace: 500 cycles per 12 months.
const cyclesPerMonth = 500.0 / 12.0

// estimatedUsageMonths converts a cycle count to assumed months of service.
func estimatedUsageMonths(cycleCount int) float64 {
	return float64(cycleCount) / cyclesPerMonth
}
