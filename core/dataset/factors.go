package dataset

import "github.com/kilianp07/fleethealth/core/model"

// deriveHealthFactors builds the stressor summary shown on the detail panel.
// Counters scale deterministically with accumulated wear (100 - SoH),
// temperature and charge level, so healthier vehicles show fewer events.
func deriveHealthFactors(v model.Vehicle) model.HealthFactors {
	wear := 100 - v.SoH

	deep := int(wear / 3)
	fast := int(wear / 2)
	hot := 0
	if v.Temperature > 30 {
		hot = int((v.Temperature - 30) * 1.5)
	}
	extremes := int(wear / 2.5)
	restingHours := int(v.SoC / 100 * wear * 30)

	return model.HealthFactors{
		DeepDischarges:  model.StressorCount{Count: deep, Impact: gradeCount(deep)},
		HighChargeRates: model.StressorCount{Count: fast, Impact: gradeCount(fast)},
		HighTemperature: model.StressorCount{Count: hot, Impact: gradeCount(hot)},
		SocExtremes:     model.StressorCount{Count: extremes, Impact: gradeCount(extremes)},
		HighSocResting:  model.StressorHours{Hours: restingHours, Impact: gradeHours(restingHours)},
	}
}

func gradeCount(n int) model.ImpactLevel {
	switch {
	case n == 0:
		return model.ImpactNone
	case n < 10:
		return model.ImpactLow
	case n < 25:
		return model.ImpactMedium
	default:
		return model.ImpactHigh
	}
}

func gradeHours(h int) model.ImpactLevel {
	switch {
	case h == 0:
		return model.ImpactNone
	case h < 150:
		return model.ImpactLow
	case h < 500:
		return model.ImpactMedium
	default:
		return model.ImpactHigh
	}
}
