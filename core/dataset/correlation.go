package dataset

import (
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/fleethealth/core/model"
)

// PearsonR computes the Pearson correlation coefficient between the
// independent variable and the derived SoH of a correlation sample set.
// Fewer than two points yield 0.
func PearsonR(points []model.CorrelationPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.SoH
	}
	return stat.Correlation(xs, ys, nil)
}
