// Package metrics defines the observability events emitted by the dataset
// lifecycle and the sink interfaces that record them. Sinks like PromSink
// and InfluxSink live in infra/metrics and can be combined with a MultiSink.
package metrics

import (
	"time"

	"github.com/kilianp07/fleethealth/core/model"
)

// DatasetBuildEvent captures one dataset generation run.
type DatasetBuildEvent struct {
	SnapshotID   string
	VehicleCount int
	DepotCount   int
	Duration     time.Duration
	Time         time.Time
}

// MetricsSink records dataset build events for observability purposes.
type MetricsSink interface {
	RecordDatasetBuild(ev DatasetBuildEvent) error
}

// FleetSummaryEvent carries the aggregate fleet gauges derived from a
// freshly built snapshot.
type FleetSummaryEvent struct {
	SnapshotID    string
	DepotAvgSoH   map[string]float64
	StatusCounts  map[model.HealthStatus]int
	ThermalCounts map[model.ThermalRisk]int
	Time          time.Time
}

// FleetSummaryRecorder records fleet-wide gauges.
type FleetSummaryRecorder interface {
	RecordFleetSummary(ev FleetSummaryEvent) error
}

// VehicleSnapshotEvent is a per-vehicle health snapshot taken at build time.
type VehicleSnapshotEvent struct {
	Vehicle    model.Vehicle
	SnapshotID string
	Time       time.Time
}

// VehicleSnapshotRecorder records per-vehicle health snapshots.
type VehicleSnapshotRecorder interface {
	RecordVehicleSnapshot(ev VehicleSnapshotEvent) error
}

// NopSink ignores all events.
type NopSink struct{}

func (NopSink) RecordDatasetBuild(DatasetBuildEvent) error       { return nil }
func (NopSink) RecordFleetSummary(FleetSummaryEvent) error       { return nil }
func (NopSink) RecordVehicleSnapshot(VehicleSnapshotEvent) error { return nil }
