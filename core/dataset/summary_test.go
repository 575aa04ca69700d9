package dataset

import (
	"math"
	"testing"

	"github.com/kilianp07/fleethealth/core/fleetgen"
	"github.com/kilianp07/fleethealth/core/model"
	"github.com/kilianp07/fleethealth/core/seriesgen"
)

func TestSummariseCountsSumToFleet(t *testing.T) {
	ds := Build(fleetgen.Config{VehicleCount: 120, Depots: fleetgen.DefaultDepots(), Seed: 9}, seriesgen.Config{Seed: 9}, buildNow)
	s := ds.Summarise()
	if s.VehicleCount != 120 {
		t.Fatalf("vehicle count %d", s.VehicleCount)
	}
	var statusSum, thermalSum int
	for _, n := range s.StatusCounts {
		statusSum += n
	}
	for _, n := range s.ThermalCounts {
		thermalSum += n
	}
	if statusSum != 120 || thermalSum != 120 {
		t.Fatalf("counts do not sum to fleet size: %d / %d", statusSum, thermalSum)
	}
	if s.DepotCount > 6 {
		t.Fatalf("depot count %d", s.DepotCount)
	}
	if s.SoH.Min > s.SoH.Mean || s.SoH.Mean > s.SoH.Max {
		t.Fatalf("soh stats inconsistent: %+v", s.SoH)
	}
	if s.SoC.P25 > s.SoC.Median || s.SoC.Median > s.SoC.P75 {
		t.Fatalf("soc quantiles inconsistent: %+v", s.SoC)
	}
	if s.MinCycleCount > s.MaxCycleCount {
		t.Fatalf("cycle bounds inconsistent")
	}
}

func TestSummariseEmptyFleet(t *testing.T) {
	ds := &Dataset{SnapshotID: "empty"}
	s := ds.Summarise()
	if s.VehicleCount != 0 || len(s.StatusCounts) != 0 {
		t.Fatalf("unexpected summary for empty fleet: %+v", s)
	}
}

func TestPearsonRNegativeForWear(t *testing.T) {
	g := seriesgen.New(seriesgen.Config{Seed: 4})
	points := g.CyclesVsSoh([]string{"BAT-001"})["BAT-001"]
	r := PearsonR(points)
	if r >= 0 {
		t.Fatalf("cycles-vs-soh correlation should be negative, got %v", r)
	}
	if math.Abs(r) > 1 {
		t.Fatalf("correlation out of range: %v", r)
	}
}

func TestPearsonRGuards(t *testing.T) {
	if PearsonR(nil) != 0 {
		t.Fatal("empty input must yield 0")
	}
	if PearsonR([]model.CorrelationPoint{{X: 1, SoH: 90}}) != 0 {
		t.Fatal("single point must yield 0")
	}
}

func TestCompareSohAlignsRows(t *testing.T) {
	ds := buildSmall(t)
	idA, idB := ds.Fleet[0].ID, ds.Fleet[1].ID
	rows := ds.CompareSoh([]string{idA, idB})
	if len(rows) != 181 {
		t.Fatalf("%d rows, want 181 shared timestamps", len(rows))
	}
	for i, row := range rows {
		if len(row.Values) != 2 {
			t.Fatalf("row %d: %d columns, want 2", i, len(row.Values))
		}
		if i > 0 && !rows[i-1].Timestamp.Before(row.Timestamp) {
			t.Fatalf("rows not ordered at %d", i)
		}
	}
}

func TestCompareSohMissingVehicle(t *testing.T) {
	ds := buildSmall(t)
	rows := ds.CompareSoh([]string{"BAT-999"})
	if len(rows) != 0 {
		t.Fatalf("missing vehicle should contribute no rows, got %d", len(rows))
	}
}

func TestCompareDegradationOrdered(t *testing.T) {
	ds := buildSmall(t)
	idA, idB := ds.Fleet[0].ID, ds.Fleet[1].ID
	rows := ds.CompareDegradation([]string{idA, idB})
	if len(rows) == 0 {
		t.Fatal("no rows")
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Cycles <= rows[i-1].Cycles {
			t.Fatalf("rows not strictly ascending at %d", i)
		}
	}
}
