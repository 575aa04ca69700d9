package dataset

import (
	"sort"
	"time"

	"github.com/kilianp07/fleethealth/core/model"
)

// TimeRow is one row of a time-axis comparison: the shared timestamp plus
// one value per selected vehicle. Vehicles without a sample at that
// timestamp are absent from the map.
type TimeRow struct {
	Timestamp time.Time          `json:"timestamp"`
	Values    map[string]float64 `json:"values"`
}

// CycleRow is one row of a cycle-axis comparison.
type CycleRow struct {
	Cycles int                `json:"cycles"`
	Values map[string]float64 `json:"values"`
}

// CompareSoh merges the SoH histories of the given vehicles into one
// row-per-timestamp structure for multi-vehicle trend charts. Missing
// vehicles contribute nothing; an empty selection yields no rows.
func (d *Dataset) CompareSoh(vehicleIDs []string) []TimeRow {
	type sample struct {
		id string
		p  model.SohPoint
	}
	var samples []sample
	for _, id := range vehicleIDs {
		for _, p := range d.SohHistory[id] {
			samples = append(samples, sample{id: id, p: p})
		}
	}
	rows := map[int64]*TimeRow{}
	for _, s := range samples {
		key := s.p.Timestamp.Unix()
		row, ok := rows[key]
		if !ok {
			row = &TimeRow{Timestamp: s.p.Timestamp, Values: map[string]float64{}}
			rows[key] = row
		}
		row.Values[s.id] = s.p.Value
	}
	out := make([]TimeRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

// CompareDegradation merges the capacity-vs-cycles series of the given
// vehicles into one row per shared cycle count. Prediction points are
// included; the x axis is the cycle count itself.
func (d *Dataset) CompareDegradation(vehicleIDs []string) []CycleRow {
	rows := map[int]*CycleRow{}
	for _, id := range vehicleIDs {
		for _, p := range d.Degradation[id] {
			row, ok := rows[p.Cycles]
			if !ok {
				row = &CycleRow{Cycles: p.Cycles, Values: map[string]float64{}}
				rows[p.Cycles] = row
			}
			row.Values[id] = p.Capacity
		}
	}
	out := make([]CycleRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cycles < out[j].Cycles })
	return out
}
