// Package dataset assembles the immutable synthetic dataset served by the
// dashboard: the fleet plus every per-vehicle series, built once per session
// (or on an explicit rebuild request) and treated as read-only afterwards.
package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/fleethealth/core/fleetgen"
	"github.com/kilianp07/fleethealth/core/model"
	"github.com/kilianp07/fleethealth/core/seriesgen"
)

// Dataset is one complete generated snapshot. Fields are never mutated after
// Build returns; a rebuild produces a new Dataset value.
type Dataset struct {
	SnapshotID  string    `json:"snapshot_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Fleet            []model.Vehicle                      `json:"fleet"`
	SohHistory       map[string][]model.SohPoint          `json:"soh_history"`
	SocHistory       map[string][]model.SocPoint          `json:"soc_history"`
	Degradation      map[string][]model.DegradationPoint  `json:"degradation"`
	ThermalHistory   map[string][]model.ThermalPoint      `json:"thermal_history"`
	ThermalMaps      map[string]model.ThermalMap          `json:"thermal_maps"`
	CycleHistory     map[string][]model.CyclePoint        `json:"cycle_history"`
	TemperatureVsSoh map[string][]model.CorrelationPoint  `json:"temperature_vs_soh"`
	CyclesVsSoh      map[string][]model.CorrelationPoint  `json:"cycles_vs_soh"`
	HealthFactors    map[string]model.HealthFactors       `json:"health_factors"`
}

// Build generates a full dataset: fleet, all series and derived health
// factors. It is the only constructor; views receive the result as an
// immutable value.
func Build(fleetCfg fleetgen.Config, seriesCfg seriesgen.Config, now time.Time) *Dataset {
	fleet := fleetgen.New(fleetCfg).Generate()
	gen := seriesgen.New(seriesCfg)

	ids := make([]string, len(fleet))
	for i, v := range fleet {
		ids[i] = v.ID
	}

	factors := make(map[string]model.HealthFactors, len(fleet))
	for _, v := range fleet {
		factors[v.ID] = deriveHealthFactors(v)
	}

	return &Dataset{
		SnapshotID:       uuid.NewString(),
		GeneratedAt:      now,
		Fleet:            fleet,
		SohHistory:       gen.SohHistory(fleet, now),
		SocHistory:       gen.SocHistory(ids, now),
		Degradation:      gen.DegradationSeries(fleet),
		ThermalHistory:   gen.ThermalHistory(ids, now),
		ThermalMaps:      gen.ThermalMaps(ids),
		CycleHistory:     gen.CycleHistory(fleet, now),
		TemperatureVsSoh: gen.TemperatureVsSoh(ids),
		CyclesVsSoh:      gen.CyclesVsSoh(ids),
		HealthFactors:    factors,
	}
}

// Vehicle returns the vehicle with the given id.
func (d *Dataset) Vehicle(id string) (model.Vehicle, bool) {
	for _, v := range d.Fleet {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

// DefaultVehicleID is the documented fallback when a requested vehicle id is
// absent: the first vehicle of the fleet. Empty fleets yield "".
func (d *Dataset) DefaultVehicleID() string {
	if len(d.Fleet) == 0 {
		return ""
	}
	return d.Fleet[0].ID
}
