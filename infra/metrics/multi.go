package metrics

import coremetrics "github.com/kilianp07/fleethealth/core/metrics"

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordDatasetBuild forwards the event to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordDatasetBuild(ev coremetrics.DatasetBuildEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordDatasetBuild(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordFleetSummary forwards summary gauges to sinks that record them.
func (m *MultiSink) RecordFleetSummary(ev coremetrics.FleetSummaryEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.FleetSummaryRecorder); ok {
			if err := rec.RecordFleetSummary(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordVehicleSnapshot forwards vehicle snapshots to sinks that record them.
func (m *MultiSink) RecordVehicleSnapshot(ev coremetrics.VehicleSnapshotEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(coremetrics.VehicleSnapshotRecorder); ok {
			if err := rec.RecordVehicleSnapshot(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
