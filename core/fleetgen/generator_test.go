package fleetgen

import (
	"strings"
	"testing"

	"github.com/kilianp07/fleethealth/core/health"
	"github.com/kilianp07/fleethealth/core/model"
)

func TestGenerateCountAndUniqueIDs(t *testing.T) {
	cfg := Config{VehicleCount: 300, Depots: DefaultDepots(), Seed: 1}
	vs := New(cfg).Generate()
	if len(vs) != 300 {
		t.Fatalf("generated %d vehicles, want 300", len(vs))
	}
	seen := map[string]bool{}
	for _, v := range vs {
		if seen[v.ID] {
			t.Fatalf("duplicate id %s", v.ID)
		}
		seen[v.ID] = true
	}
	if vs[0].ID != "BAT-001" || vs[299].ID != "BAT-300" {
		t.Fatalf("id format wrong: %s .. %s", vs[0].ID, vs[299].ID)
	}
}

func TestGenerateClassificationConsistent(t *testing.T) {
	cfg := Config{VehicleCount: 300, Depots: DefaultDepots(), Seed: 42}
	for _, v := range New(cfg).Generate() {
		if v.Status != health.ClassifyHealth(v.SoH) {
			t.Errorf("%s: status %s inconsistent with soh %.1f", v.ID, v.Status, v.SoH)
		}
		if v.ThermalRisk != health.ClassifyThermal(v.Temperature) {
			t.Errorf("%s: thermal risk %s inconsistent with temp %.1f", v.ID, v.ThermalRisk, v.Temperature)
		}
		if err := v.Validate(); err != nil {
			t.Errorf("%s: %v", v.ID, err)
		}
	}
}

func TestGenerateDepotMembership(t *testing.T) {
	cfg := Config{VehicleCount: 100, Depots: []string{"A", "B"}, Seed: 7}
	for _, v := range New(cfg).Generate() {
		if v.Depot != "A" && v.Depot != "B" {
			t.Fatalf("unexpected depot %q", v.Depot)
		}
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	cfg := Config{VehicleCount: 50, Depots: DefaultDepots(), Seed: 99}
	a := New(cfg).Generate()
	b := New(cfg).Generate()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vehicle %d differs between seeded runs", i)
		}
	}
}

func TestLifeRemainingFormat(t *testing.T) {
	cases := []struct {
		soh  float64
		want string
	}{
		{90, "4 years 0 months"},
		{75, "2 years 6 months"},
		{55, "6 months"},
		{30, "6 months"}, // floor at half a year
	}
	for _, c := range cases {
		if got := lifeRemaining(c.soh); got != c.want {
			t.Errorf("lifeRemaining(%v) = %q, want %q", c.soh, got, c.want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if cfg.VehicleCount != 300 || len(cfg.Depots) != 6 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	bad := Config{VehicleCount: 0, Depots: nil}
	if err := bad.Validate(); err == nil || !strings.Contains(err.Error(), "positive") {
		t.Fatalf("expected vehicle count error, got %v", err)
	}
}

func TestStatusDistributionCoversBuckets(t *testing.T) {
	// Central Depot spans 55..90 SoH, so a large fleet should hit several
	// status buckets.
	cfg := Config{VehicleCount: 500, Depots: []string{"Central Depot"}, Seed: 3}
	counts := map[model.HealthStatus]int{}
	for _, v := range New(cfg).Generate() {
		counts[v.Status]++
	}
	if len(counts) < 3 {
		t.Fatalf("expected spread across statuses, got %v", counts)
	}
}
