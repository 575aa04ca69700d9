// Package export serializes generated fleets for use outside the dashboard.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/kilianp07/fleethealth/core/model"
)

// WriteJSON writes the fleet to w in JSON format.
func WriteJSON(w io.Writer, fleet []model.Vehicle) error {
	enc := json.NewEncoder(w)
	return enc.Encode(fleet)
}

// WriteCSV writes the fleet to w in CSV format.
func WriteCSV(w io.Writer, fleet []model.Vehicle) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "name", "depot", "soh", "soc", "temperature",
		"thermal_risk", "status", "cycle_count", "estimated_life_remaining",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, v := range fleet {
		rec := []string{
			v.ID,
			v.Name,
			v.Depot,
			strconv.FormatFloat(v.SoH, 'f', -1, 64),
			strconv.FormatFloat(v.SoC, 'f', -1, 64),
			strconv.FormatFloat(v.Temperature, 'f', -1, 64),
			string(v.ThermalRisk),
			string(v.Status),
			strconv.Itoa(v.CycleCount),
			v.EstimatedLifeRemaining,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
