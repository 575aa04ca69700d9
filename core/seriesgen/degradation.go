package seriesgen

import (
	"math"

	"github.com/kilianp07/fleethealth/core/model"
)

// assumedFullLifeCycles is the cycle count treated as 100% of battery life
// by the degradation curve.
const assumedFullLifeCycles = 2000

// predictionSteps is the number of extrapolated points appended beyond the
// vehicle's current cycle count.
const predictionSteps = 5

// DegradationSeries generates a capacity-vs-cycles curve per vehicle: ~40
// historical steps from zero to the current cycle count, capacity declining
// linearly with cycle progress plus noise and an occasional thermal dip,
// followed by five extrapolated points flagged IsPrediction.
func (g *Generator) DegradationSeries(vehicles []model.Vehicle) map[string][]model.DegradationPoint {
	out := make(map[string][]model.DegradationPoint, len(vehicles))
	for _, v := range vehicles {
		total := v.CycleCount
		step := total / 40
		if step < 1 {
			step = 1
		}

		var points []model.DegradationPoint
		for cycle := 0; cycle <= total; cycle += step {
			progress := float64(cycle) / assumedFullLifeCycles
			capacity := 100 - progress*40 + g.noise(3)
			if g.rng.Float64() < 0.1 {
				capacity -= 2 // transient thermal dip
			}
			points = append(points, model.DegradationPoint{
				Cycles:   cycle,
				Capacity: round1(math.Max(50, capacity)),
			})
		}

		for i := 1; i <= predictionSteps; i++ {
			futureCycle := total + i*200
			progress := float64(futureCycle) / assumedFullLifeCycles
			predicted := 100 - progress*40 - g.rng.Float64()*2
			points = append(points, model.DegradationPoint{
				Cycles:       futureCycle,
				Capacity:     round1(math.Max(30, predicted)),
				IsPrediction: true,
			})
		}
		out[v.ID] = points
	}
	return out
}
