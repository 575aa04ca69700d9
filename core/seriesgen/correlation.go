package seriesgen

import (
	"math"

	"github.com/kilianp07/fleethealth/core/model"
)

// TemperatureVsSoh generates 50 synthetic samples per vehicle relating
// operating temperature (X, °C in [15,45]) to a derived SoH via a fixed
// power law plus noise. Samples illustrate correlation and are not
// time-ordered.
func (g *Generator) TemperatureVsSoh(vehicleIDs []string) map[string][]model.CorrelationPoint {
	out := make(map[string][]model.CorrelationPoint, len(vehicleIDs))
	for _, id := range vehicleIDs {
		points := make([]model.CorrelationPoint, 0, 50)
		for i := 0; i < 50; i++ {
			temp := 15 + g.rng.Float64()*30
			frac := (temp - 15) / 30
			soh := 100 - 35*math.Pow(frac, 1.3) + g.noise(4)
			points = append(points, model.CorrelationPoint{
				X:   round1(temp),
				SoH: round1(clamp(soh, 40, 100)),
			})
		}
		out[id] = points
	}
	return out
}

// CyclesVsSoh generates 40 synthetic samples per vehicle relating cycle
// count (X) to a derived SoH via a fixed power law plus noise.
func (g *Generator) CyclesVsSoh(vehicleIDs []string) map[string][]model.CorrelationPoint {
	out := make(map[string][]model.CorrelationPoint, len(vehicleIDs))
	for _, id := range vehicleIDs {
		points := make([]model.CorrelationPoint, 0, 40)
		for i := 0; i < 40; i++ {
			frac := g.rng.Float64()
			cycles := math.Round(frac * assumedFullLifeCycles)
			soh := 100 - 40*math.Pow(frac, 1.2) + g.noise(3)
			points = append(points, model.CorrelationPoint{
				X:   cycles,
				SoH: round1(clamp(soh, 40, 100)),
			})
		}
		out[id] = points
	}
	return out
}
