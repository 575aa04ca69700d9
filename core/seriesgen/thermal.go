package seriesgen

import (
	"math"
	"time"

	"github.com/kilianp07/fleethealth/core/model"
)

// ThermalHistory generates a pack temperature series per vehicle: 12 points
// at two-hour intervals over the last 24 hours, a sinusoidal daily swing
// around a random per-vehicle base plus noise, clamped to [15,50]°C.
func (g *Generator) ThermalHistory(vehicleIDs []string, now time.Time) map[string][]model.ThermalPoint {
	out := make(map[string][]model.ThermalPoint, len(vehicleIDs))
	for _, id := range vehicleIDs {
		base := 22 + g.rng.Float64()*12
		points := make([]model.ThermalPoint, 0, 12)
		for i := 0; i < 12; i++ {
			hoursAgo := 22 - 2*i
			ts := now.Add(-time.Duration(hoursAgo) * time.Hour)

			// Peak mid-afternoon, trough before dawn.
			dayFraction := float64(ts.Hour()) / 24
			swing := math.Sin((dayFraction-0.25)*2*math.Pi) * 3

			temp := clamp(base+swing+g.noise(1.5), 15, 50)
			points = append(points, model.ThermalPoint{Timestamp: ts, Temperature: round1(temp)})
		}
		out[id] = points
	}
	return out
}

// ThermalMaps generates a 5x5 spatial temperature grid per vehicle. Every
// fifth vehicle (by numeric id suffix) gets a hot center-peaked profile;
// the rest get a mild center-biased warm profile. Both add uniform noise.
func (g *Generator) ThermalMaps(vehicleIDs []string) map[string]model.ThermalMap {
	out := make(map[string]model.ThermalMap, len(vehicleIDs))
	for _, id := range vehicleIDs {
		hot := numericSuffix(id)%5 == 0

		var base, gradient float64
		if hot {
			base = 38 + g.rng.Float64()*4
			gradient = 1.5
		} else {
			base = 23 + g.rng.Float64()*3
			gradient = 0.4
		}

		var grid model.ThermalMap
		center := float64(model.ThermalMapSize-1) / 2
		for r := 0; r < model.ThermalMapSize; r++ {
			for c := 0; c < model.ThermalMapSize; c++ {
				dist := math.Max(math.Abs(float64(r)-center), math.Abs(float64(c)-center))
				cell := base + (center-dist)*gradient + g.noise(0.4)
				grid[r][c] = round1(cell)
			}
		}
		out[id] = grid
	}
	return out
}
