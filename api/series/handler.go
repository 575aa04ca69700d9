// Package series exposes the per-vehicle history, thermal and correlation
// series over HTTP.
package series

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kilianp07/fleethealth/core/dataset"
)

// resolveVehicle applies the documented fallback: an unknown or empty
// vehicle id resolves to the first vehicle of the fleet.
func resolveVehicle(ds *dataset.Dataset, id string) string {
	if _, ok := ds.Vehicle(id); ok {
		return id
	}
	return ds.DefaultVehicleID()
}

// seriesPayload wraps any series with its identifying fields.
type seriesPayload struct {
	VehicleID string `json:"vehicle_id"`
	Metric    string `json:"metric"`
	Points    any    `json:"points"`
}

// NewSeriesHandler returns an HTTP handler exposing one vehicle's series via
// GET /api/series?vehicle_id=&metric=. Supported metrics: soh, soc,
// degradation, thermal, cycles. A vehicle without data yields an empty
// point list rather than an error.
func NewSeriesHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ds := store.Snapshot()
		id := resolveVehicle(ds, r.URL.Query().Get("vehicle_id"))
		metric := r.URL.Query().Get("metric")

		var points any
		switch metric {
		case "", "soh":
			metric = "soh"
			points = orEmpty(ds.SohHistory[id])
		case "soc":
			points = orEmpty(ds.SocHistory[id])
		case "degradation":
			points = orEmpty(ds.Degradation[id])
		case "thermal":
			points = orEmpty(ds.ThermalHistory[id])
		case "cycles":
			points = orEmpty(ds.CycleHistory[id])
		default:
			http.Error(w, fmt.Sprintf("unknown metric %q", metric), http.StatusBadRequest)
			return
		}
		writeJSON(w, seriesPayload{VehicleID: id, Metric: metric, Points: points})
	})
}

// orEmpty substitutes an empty slice for nil so absent series encode as [].
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// NewThermalMapHandler returns an HTTP handler exposing a vehicle's spatial
// thermal grid via GET /api/thermal-map?vehicle_id=.
func NewThermalMapHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ds := store.Snapshot()
		id := resolveVehicle(ds, r.URL.Query().Get("vehicle_id"))
		grid, ok := ds.ThermalMaps[id]
		if !ok {
			http.Error(w, "no thermal map available", http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{"vehicle_id": id, "grid": grid})
	})
}

// correlationPayload carries the sample points plus their Pearson
// correlation coefficient.
type correlationPayload struct {
	VehicleID string  `json:"vehicle_id"`
	Kind      string  `json:"kind"`
	PearsonR  float64 `json:"pearson_r"`
	Points    any     `json:"points"`
}

// NewCorrelationHandler returns an HTTP handler exposing a vehicle's
// correlation samples via GET /api/correlation?vehicle_id=&kind=.
// Supported kinds: temperature, cycles.
func NewCorrelationHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ds := store.Snapshot()
		id := resolveVehicle(ds, r.URL.Query().Get("vehicle_id"))
		kind := r.URL.Query().Get("kind")

		var payload correlationPayload
		switch kind {
		case "", "temperature":
			points := ds.TemperatureVsSoh[id]
			payload = correlationPayload{VehicleID: id, Kind: "temperature", PearsonR: dataset.PearsonR(points), Points: orEmpty(points)}
		case "cycles":
			points := ds.CyclesVsSoh[id]
			payload = correlationPayload{VehicleID: id, Kind: "cycles", PearsonR: dataset.PearsonR(points), Points: orEmpty(points)}
		default:
			http.Error(w, fmt.Sprintf("unknown correlation kind %q", kind), http.StatusBadRequest)
			return
		}
		writeJSON(w, payload)
	})
}

// NewCompareHandler returns an HTTP handler merging several vehicles'
// series into row-per-x data via GET /api/compare?metric=&vehicle_id=a&
// vehicle_id=b. Supported metrics: soh, degradation.
func NewCompareHandler(store dataset.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ds := store.Snapshot()
		ids := r.URL.Query()["vehicle_id"]
		if len(ids) == 0 {
			http.Error(w, "at least one vehicle_id is required", http.StatusBadRequest)
			return
		}
		metric := r.URL.Query().Get("metric")
		switch metric {
		case "", "soh":
			writeJSON(w, map[string]any{"metric": "soh", "rows": ds.CompareSoh(ids)})
		case "degradation":
			writeJSON(w, map[string]any{"metric": "degradation", "rows": ds.CompareDegradation(ids)})
		default:
			http.Error(w, fmt.Sprintf("unsupported comparison metric %q", metric), http.StatusBadRequest)
		}
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
