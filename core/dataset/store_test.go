package dataset

import (
	"testing"

	"github.com/kilianp07/fleethealth/core/model"
)

func storeWith(vs ...model.Vehicle) *MemoryStore {
	return NewMemoryStore(&Dataset{SnapshotID: "test", Fleet: vs})
}

func TestMemoryStoreFilterDepot(t *testing.T) {
	s := storeWith(
		model.Vehicle{ID: "BAT-001", Depot: "North Depot", SoH: 95},
		model.Vehicle{ID: "BAT-002", Depot: "South Depot", SoH: 72},
	)
	out := s.List(Filter{Depot: "North Depot"})
	if len(out) != 1 || out[0].ID != "BAT-001" {
		t.Fatalf("depot filter failed: %#v", out)
	}
}

func TestMemoryStoreFilterStatusAndRisk(t *testing.T) {
	s := storeWith(
		model.Vehicle{ID: "BAT-001", Status: model.StatusOptimal, ThermalRisk: model.ThermalSafe},
		model.Vehicle{ID: "BAT-002", Status: model.StatusCritical, ThermalRisk: model.ThermalDanger},
	)
	out := s.List(Filter{Status: model.StatusCritical})
	if len(out) != 1 || out[0].ID != "BAT-002" {
		t.Fatalf("status filter failed: %#v", out)
	}
	out = s.List(Filter{ThermalRisk: model.ThermalSafe})
	if len(out) != 1 || out[0].ID != "BAT-001" {
		t.Fatalf("thermal filter failed: %#v", out)
	}
}

func TestMemoryStoreFilterSearch(t *testing.T) {
	s := storeWith(
		model.Vehicle{ID: "BAT-001", Name: "Vehicle 001"},
		model.Vehicle{ID: "BAT-042", Name: "Vehicle 042"},
	)
	out := s.List(Filter{Search: "042"})
	if len(out) != 1 || out[0].ID != "BAT-042" {
		t.Fatalf("search filter failed: %#v", out)
	}
	out = s.List(Filter{Search: "vehicle"})
	if len(out) != 2 {
		t.Fatalf("case-insensitive name search failed: %#v", out)
	}
}

func TestMemoryStoreFilterSohBounds(t *testing.T) {
	s := storeWith(
		model.Vehicle{ID: "BAT-001", SoH: 95},
		model.Vehicle{ID: "BAT-002", SoH: 75},
		model.Vehicle{ID: "BAT-003", SoH: 55},
	)
	out := s.List(Filter{MinSoH: 70, MaxSoH: 90})
	if len(out) != 1 || out[0].ID != "BAT-002" {
		t.Fatalf("soh bounds filter failed: %#v", out)
	}
}

func TestMemoryStoreListSorted(t *testing.T) {
	s := storeWith(
		model.Vehicle{ID: "BAT-003"},
		model.Vehicle{ID: "BAT-001"},
		model.Vehicle{ID: "BAT-002"},
	)
	out := s.List(Filter{})
	for i := 1; i < len(out); i++ {
		if out[i].ID < out[i-1].ID {
			t.Fatalf("list not sorted: %#v", out)
		}
	}
}

func TestMemoryStoreSwap(t *testing.T) {
	s := storeWith(model.Vehicle{ID: "BAT-001"})
	old := s.Snapshot()
	s.Swap(&Dataset{SnapshotID: "new", Fleet: []model.Vehicle{{ID: "BAT-009"}}})
	if s.Snapshot().SnapshotID != "new" {
		t.Fatal("swap did not take effect")
	}
	// Previously obtained snapshots stay intact.
	if old.Fleet[0].ID != "BAT-001" {
		t.Fatal("old snapshot mutated")
	}
	if _, ok := s.Get("BAT-009"); !ok {
		t.Fatal("new vehicle not visible after swap")
	}
}
