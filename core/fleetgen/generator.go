// Package fleetgen produces the synthetic battery fleet the dashboard
// monitors. Values are random per run (unless seeded) but always follow the
// depot profiles, so generated fleets keep a realistic shape.
package fleetgen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/kilianp07/fleethealth/core/health"
	"github.com/kilianp07/fleethealth/core/model"
)

// Generator creates synthetic fleets from depot profiles.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. A zero seed falls back to a time-based source.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Generate creates cfg.VehicleCount vehicles with IDs BAT-001..BAT-NNN.
// Each vehicle is assigned a uniform-random depot and draws its base values
// from that depot's profile; status and thermal risk derive from the fixed
// classifier thresholds.
func (g *Generator) Generate() []model.Vehicle {
	vs := make([]model.Vehicle, g.cfg.VehicleCount)
	for i := range vs {
		depot := g.cfg.Depots[g.rng.Intn(len(g.cfg.Depots))]
		p := profileFor(depot)

		soh := round1(p.sohBase + g.rng.Float64()*p.sohSpread)
		temp := round1(p.tempBase + g.rng.Float64()*p.tempSpread)
		soc := math.Round(p.socBase + g.rng.Float64()*p.socSpread)

		// Cycle count grows as health declines, with some scatter.
		cycles := int(math.Round((100-soh)/30*2000 + g.rng.Float64()*200))

		vs[i] = model.Vehicle{
			ID:                     fmt.Sprintf("BAT-%03d", i+1),
			Name:                   fmt.Sprintf("Vehicle %03d", i+1),
			Depot:                  depot,
			SoH:                    soh,
			SoC:                    soc,
			Temperature:            temp,
			Status:                 health.ClassifyHealth(soh),
			ThermalRisk:            health.ClassifyThermal(temp),
			CycleCount:             cycles,
			EstimatedLifeRemaining: lifeRemaining(soh),
		}
	}
	return vs
}

// lifeRemaining converts SoH to a human-readable duration. The estimate
// floors at half a year regardless of health.
func lifeRemaining(soh float64) string {
	years := math.Max(0.5, (soh-50)/10)
	months := int(math.Round(years * 12))
	if months >= 12 {
		return fmt.Sprintf("%d years %d months", months/12, months%12)
	}
	return fmt.Sprintf("%d months", months)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
