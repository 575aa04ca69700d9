package dataset

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/fleethealth/core/model"
)

// Stats are basic descriptive statistics over one fleet metric.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Quantiles summarise a metric's distribution.
type Quantiles struct {
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
}

// Summary is the fleet-wide aggregate served by the overview dashboard.
type Summary struct {
	SnapshotID    string                       `json:"snapshot_id"`
	VehicleCount  int                          `json:"vehicle_count"`
	DepotCount    int                          `json:"depot_count"`
	SoH           Stats                        `json:"soh"`
	Temperature   Stats                        `json:"temperature"`
	SoC           Quantiles                    `json:"soc"`
	AvgCycleCount float64                      `json:"avg_cycle_count"`
	MaxCycleCount int                          `json:"max_cycle_count"`
	MinCycleCount int                          `json:"min_cycle_count"`
	StatusCounts  map[model.HealthStatus]int   `json:"status_counts"`
	ThermalCounts map[model.ThermalRisk]int    `json:"thermal_counts"`
	DepotAvgSoH   map[string]float64           `json:"depot_avg_soh"`
}

// Summarise computes the fleet summary for the snapshot.
func (d *Dataset) Summarise() Summary {
	s := Summary{
		SnapshotID:    d.SnapshotID,
		VehicleCount:  len(d.Fleet),
		StatusCounts:  map[model.HealthStatus]int{},
		ThermalCounts: map[model.ThermalRisk]int{},
		DepotAvgSoH:   map[string]float64{},
	}
	if len(d.Fleet) == 0 {
		return s
	}

	sohs := make([]float64, len(d.Fleet))
	temps := make([]float64, len(d.Fleet))
	socs := make([]float64, len(d.Fleet))
	depotSoh := map[string][]float64{}
	var cycleSum int
	s.MinCycleCount = d.Fleet[0].CycleCount

	for i, v := range d.Fleet {
		sohs[i] = v.SoH
		temps[i] = v.Temperature
		socs[i] = v.SoC
		s.StatusCounts[v.Status]++
		s.ThermalCounts[v.ThermalRisk]++
		depotSoh[v.Depot] = append(depotSoh[v.Depot], v.SoH)
		cycleSum += v.CycleCount
		if v.CycleCount > s.MaxCycleCount {
			s.MaxCycleCount = v.CycleCount
		}
		if v.CycleCount < s.MinCycleCount {
			s.MinCycleCount = v.CycleCount
		}
	}

	s.SoH = describe(sohs)
	s.Temperature = describe(temps)
	s.SoC = quantiles(socs)
	s.AvgCycleCount = float64(cycleSum) / float64(len(d.Fleet))
	s.DepotCount = len(depotSoh)
	for depot, vals := range depotSoh {
		s.DepotAvgSoH[depot] = stat.Mean(vals, nil)
	}
	return s
}

func describe(vals []float64) Stats {
	st := Stats{
		Mean: stat.Mean(vals, nil),
		Min:  vals[0],
		Max:  vals[0],
	}
	if len(vals) > 1 {
		st.StdDev = stat.StdDev(vals, nil)
	}
	for _, v := range vals {
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
	}
	return st
}

func quantiles(vals []float64) Quantiles {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return Quantiles{
		P25:    stat.Quantile(0.25, stat.Empirical, sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P75:    stat.Quantile(0.75, stat.Empirical, sorted, nil),
	}
}
