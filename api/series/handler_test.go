package series

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kilianp07/fleethealth/core/dataset"
	"github.com/kilianp07/fleethealth/core/fleetgen"
	"github.com/kilianp07/fleethealth/core/seriesgen"
)

func testStore(t *testing.T) dataset.Store {
	t.Helper()
	ds := dataset.Build(
		fleetgen.Config{VehicleCount: 6, Depots: fleetgen.DefaultDepots(), Seed: 5},
		seriesgen.Config{Seed: 5},
		time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	)
	return dataset.NewMemoryStore(ds)
}

func TestSeriesHandlerDefaultsToSoh(t *testing.T) {
	h := NewSeriesHandler(testStore(t))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/series?vehicle_id=BAT-002", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		VehicleID string            `json:"vehicle_id"`
		Metric    string            `json:"metric"`
		Points    []json.RawMessage `json:"points"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Metric != "soh" || out.VehicleID != "BAT-002" {
		t.Fatalf("unexpected payload %s/%s", out.Metric, out.VehicleID)
	}
	if len(out.Points) == 0 {
		t.Fatal("expected points")
	}
}

func TestSeriesHandlerUnknownMetric(t *testing.T) {
	h := NewSeriesHandler(testStore(t))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/series?metric=voltage", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestSeriesHandlerUnknownVehicleFallsBack(t *testing.T) {
	h := NewSeriesHandler(testStore(t))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/series?vehicle_id=nope&metric=cycles", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		VehicleID string `json:"vehicle_id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.VehicleID != "BAT-001" {
		t.Fatalf("expected fallback to BAT-001, got %s", out.VehicleID)
	}
}

func TestThermalMapHandler(t *testing.T) {
	h := NewThermalMapHandler(testStore(t))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/thermal-map?vehicle_id=BAT-003", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Grid [][]float64 `json:"grid"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Grid) != 5 || len(out.Grid[0]) != 5 {
		t.Fatalf("expected 5x5 grid, got %dx%d", len(out.Grid), len(out.Grid[0]))
	}
}

func TestCorrelationHandler(t *testing.T) {
	h := NewCorrelationHandler(testStore(t))
	for _, kind := range []string{"", "temperature", "cycles"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/correlation?kind="+kind, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("kind %q: status %d", kind, rr.Code)
		}
		var out struct {
			Kind     string            `json:"kind"`
			PearsonR float64           `json:"pearson_r"`
			Points   []json.RawMessage `json:"points"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("kind %q: decode: %v", kind, err)
		}
		if len(out.Points) == 0 {
			t.Fatalf("kind %q: expected points", kind)
		}
		if out.PearsonR >= 0 {
			t.Fatalf("kind %q: expected negative correlation, got %f", kind, out.PearsonR)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/correlation?kind=humidity", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
}

func TestCompareHandler(t *testing.T) {
	h := NewCompareHandler(testStore(t))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/compare?vehicle_id=BAT-001&vehicle_id=BAT-002", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out struct {
		Metric string            `json:"metric"`
		Rows   []dataset.TimeRow `json:"rows"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Metric != "soh" || len(out.Rows) == 0 {
		t.Fatalf("unexpected comparison %s with %d rows", out.Metric, len(out.Rows))
	}
	for _, row := range out.Rows {
		if len(row.Values) != 2 {
			t.Fatalf("expected two columns per row, got %d", len(row.Values))
		}
	}
}

func TestCompareHandlerRequiresVehicles(t *testing.T) {
	h := NewCompareHandler(testStore(t))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/api/compare", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
}
