package metrics

import (
	"testing"
	"time"

	coremetrics "github.com/kilianp07/fleethealth/core/metrics"
	"github.com/kilianp07/fleethealth/core/model"
)

type recordingSink struct {
	builds    int
	summaries int
	snapshots int
}

func (r *recordingSink) RecordDatasetBuild(coremetrics.DatasetBuildEvent) error {
	r.builds++
	return nil
}

func (r *recordingSink) RecordFleetSummary(coremetrics.FleetSummaryEvent) error {
	r.summaries++
	return nil
}

func (r *recordingSink) RecordVehicleSnapshot(coremetrics.VehicleSnapshotEvent) error {
	r.snapshots++
	return nil
}

func TestMultiSinkFanOut(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := NewMultiSink(a, b, coremetrics.NopSink{})

	ev := coremetrics.DatasetBuildEvent{SnapshotID: "s1", VehicleCount: 10, Time: time.Now()}
	if err := m.RecordDatasetBuild(ev); err != nil {
		t.Fatalf("record build: %v", err)
	}
	if err := m.RecordFleetSummary(coremetrics.FleetSummaryEvent{SnapshotID: "s1"}); err != nil {
		t.Fatalf("record summary: %v", err)
	}
	if err := m.RecordVehicleSnapshot(coremetrics.VehicleSnapshotEvent{Vehicle: model.Vehicle{ID: "BAT-001"}}); err != nil {
		t.Fatalf("record snapshot: %v", err)
	}
	if a.builds != 1 || b.builds != 1 || a.summaries != 1 || a.snapshots != 1 {
		t.Fatalf("fan-out incomplete: %+v %+v", a, b)
	}
}

func TestPromSinkRecords(t *testing.T) {
	sink, err := NewPromSink(nil)
	if err != nil {
		t.Fatalf("new prom sink: %v", err)
	}
	ev := coremetrics.DatasetBuildEvent{SnapshotID: "s1", VehicleCount: 5, Duration: 2 * time.Millisecond, Time: time.Now()}
	if err := sink.RecordDatasetBuild(ev); err != nil {
		t.Fatalf("record build: %v", err)
	}
	sum := coremetrics.FleetSummaryEvent{
		StatusCounts: map[model.HealthStatus]int{model.StatusOptimal: 3, model.StatusCritical: 2},
		DepotAvgSoH:  map[string]float64{"North Depot": 92.1},
	}
	if err := sink.RecordFleetSummary(sum); err != nil {
		t.Fatalf("record summary: %v", err)
	}
	// Registering twice must reuse existing collectors, not fail.
	if _, err := NewPromSink(nil); err != nil {
		t.Fatalf("re-register: %v", err)
	}
}
