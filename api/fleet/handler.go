// Package fleet exposes the fleet views over HTTP: listing with filters,
// the aggregate summary, per-vehicle health detail and rebuild requests.
package fleet

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kilianp07/fleethealth/core/dataset"
	"github.com/kilianp07/fleethealth/core/health"
	"github.com/kilianp07/fleethealth/core/model"
	"github.com/kilianp07/fleethealth/internal/eventbus"
)

// NewListHandler returns an HTTP handler exposing the filtered fleet via
// GET /api/fleet.
func NewListHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query()
		f := dataset.Filter{
			Depot:       q.Get("depot"),
			Status:      model.HealthStatus(q.Get("status")),
			ThermalRisk: model.ThermalRisk(q.Get("thermal_risk")),
			Search:      q.Get("search"),
		}
		if s := q.Get("min_soh"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				f.MinSoH = v
			}
		}
		if s := q.Get("max_soh"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				f.MaxSoH = v
			}
		}
		writeJSON(w, store.List(f))
	})
}

// NewSummaryHandler returns an HTTP handler exposing the fleet aggregate via
// GET /api/fleet/summary.
func NewSummaryHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, store.Snapshot().Summarise())
	})
}

// HealthDetail is the per-vehicle detail panel payload. SohGaugeColor is the
// hex color the SoH gauge renders with.
type HealthDetail struct {
	Vehicle                model.Vehicle       `json:"vehicle"`
	Description            string              `json:"description"`
	RemainingLife          string              `json:"remaining_life"`
	SohGaugeColor          string              `json:"soh_gauge_color"`
	MonthlyDegradationRate float64             `json:"monthly_degradation_rate"`
	HealthFactors          model.HealthFactors `json:"health_factors"`
}

// NewHealthHandler returns an HTTP handler exposing one vehicle's health
// detail via GET /api/vehicles/health?vehicle_id=. An unknown or missing id
// falls back to the first vehicle of the fleet.
func NewHealthHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ds := store.Snapshot()
		id := r.URL.Query().Get("vehicle_id")
		v, ok := ds.Vehicle(id)
		if !ok {
			id = ds.DefaultVehicleID()
			if v, ok = ds.Vehicle(id); !ok {
				http.Error(w, "fleet is empty", http.StatusNotFound)
				return
			}
		}
		writeJSON(w, HealthDetail{
			Vehicle:                v,
			Description:            health.StatusDescription(v.Status),
			RemainingLife:          health.RemainingLife(v.SoH),
			SohGaugeColor:          health.GaugeColor(v.SoH),
			MonthlyDegradationRate: health.MonthlyDegradationRate(ds.SohHistory[v.ID]),
			HealthFactors:          ds.HealthFactors[v.ID],
		})
	})
}

// NewRegenerateHandler returns an HTTP handler accepting rebuild requests
// via POST /api/fleet/regenerate. The rebuild itself happens asynchronously
// in the service loop; the response carries the snapshot being replaced.
func NewRegenerateHandler(store dataset.Store, bus eventbus.EventBus) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		bus.Publish(eventbus.RebuildRequested{Reason: "api"})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]string{
			"status":               "rebuild requested",
			"previous_snapshot_id": store.Snapshot().SnapshotID,
		})
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
