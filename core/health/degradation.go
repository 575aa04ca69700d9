package health

import "github.com/kilianp07/fleethealth/core/model"

// MonthlyDegradationRate computes the average SoH loss per calendar month
// between the first and last points of an ascending-ordered series.
//
// The month difference is calendar based (year and month components only,
// day of month ignored), not elapsed-days/30. Series with fewer than two
// points, or whose endpoints fall in the same calendar month, yield 0.
// The result is signed: positive means capacity loss, negative an apparent
// gain, which noisy synthetic series can produce.
func MonthlyDegradationRate(series []model.SohPoint) float64 {
	if len(series) < 2 {
		return 0
	}
	first := series[0]
	last := series[len(series)-1]

	months := (last.Timestamp.Year()-first.Timestamp.Year())*12 +
		int(last.Timestamp.Month()) - int(first.Timestamp.Month())
	if months == 0 {
		return 0
	}
	return (first.Value - last.Value) / float64(months)
}
