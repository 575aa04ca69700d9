package health

import (
	"testing"

	"github.com/kilianp07/fleethealth/core/model"
)

func TestClassifyHealth(t *testing.T) {
	cases := []struct {
		soh  float64
		want model.HealthStatus
	}{
		{100, model.StatusOptimal},
		{90, model.StatusOptimal},
		{89.999, model.StatusGood},
		{80, model.StatusGood},
		{79.9, model.StatusModerate},
		{70, model.StatusModerate},
		{69.9, model.StatusWarning},
		{60, model.StatusWarning},
		{59.9, model.StatusCritical},
		{0, model.StatusCritical},
		{-5, model.StatusCritical},
		{120, model.StatusOptimal},
	}
	for _, c := range cases {
		if got := ClassifyHealth(c.soh); got != c.want {
			t.Errorf("ClassifyHealth(%v) = %s, want %s", c.soh, got, c.want)
		}
	}
}

func TestClassifyThermal(t *testing.T) {
	cases := []struct {
		temp float64
		want model.ThermalRisk
	}{
		{20, model.ThermalSafe},
		{29.9, model.ThermalSafe},
		{30, model.ThermalElevated},
		{34.9, model.ThermalElevated},
		{35, model.ThermalCaution},
		{39.9, model.ThermalCaution},
		{40, model.ThermalWarning},
		{44.9, model.ThermalWarning},
		{45, model.ThermalDanger},
		{60, model.ThermalDanger},
		{-10, model.ThermalSafe},
	}
	for _, c := range cases {
		if got := ClassifyThermal(c.temp); got != c.want {
			t.Errorf("ClassifyThermal(%v) = %s, want %s", c.temp, got, c.want)
		}
	}
}

func TestClassifyHealthMonotonic(t *testing.T) {
	rank := map[model.HealthStatus]int{}
	for i, s := range model.HealthStatuses {
		rank[s] = i
	}
	prev := ClassifyHealth(100)
	for soh := 100.0; soh >= 0; soh -= 0.5 {
		cur := ClassifyHealth(soh)
		if rank[cur] < rank[prev] {
			t.Fatalf("status improved from %s to %s as soh dropped to %v", prev, cur, soh)
		}
		prev = cur
	}
}

func TestRemainingLife(t *testing.T) {
	cases := []struct {
		soh  float64
		want string
	}{
		{98, "4+ years"},
		{92, "3-4 years"},
		{85, "2-3 years"},
		{75, "1-2 years"},
		{65, "6-12 months"},
		{50, "< 6 months"},
	}
	for _, c := range cases {
		if got := RemainingLife(c.soh); got != c.want {
			t.Errorf("RemainingLife(%v) = %q, want %q", c.soh, got, c.want)
		}
	}
}

func TestHeatLevel(t *testing.T) {
	cases := []struct {
		temp float64
		want int
	}{
		{20, 0}, {25, 1}, {30, 2}, {35, 3}, {40, 4}, {45, 5}, {50, 5},
	}
	for _, c := range cases {
		if got := HeatLevel(c.temp); got != c.want {
			t.Errorf("HeatLevel(%v) = %d, want %d", c.temp, got, c.want)
		}
	}
}

func TestGaugeColor(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{95, "#22c55e"}, {80, "#84cc16"}, {60, "#eab308"},
		{40, "#f97316"}, {20, "#ef4444"}, {0, "#ef4444"},
	}
	for _, c := range cases {
		if got := GaugeColor(c.value); got != c.want {
			t.Errorf("GaugeColor(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}
