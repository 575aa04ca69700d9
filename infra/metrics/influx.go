package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/fleethealth/core/metrics"
	"github.com/kilianp07/fleethealth/infra/logger"
)

// InfluxSink writes fleet snapshots to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	client := influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails, so a missing backend never blocks the
// dashboard.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordDatasetBuild writes a dataset_build point.
func (s *InfluxSink) RecordDatasetBuild(ev coremetrics.DatasetBuildEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("dataset_build").
		AddTag("snapshot_id", ev.SnapshotID).
		AddField("vehicle_count", ev.VehicleCount).
		AddField("depot_count", ev.DepotCount).
		AddField("duration_ms", ev.Duration.Milliseconds()).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordVehicleSnapshot writes one vehicle_health point.
func (s *InfluxSink) RecordVehicleSnapshot(ev coremetrics.VehicleSnapshotEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	v := ev.Vehicle
	p := write.NewPointWithMeasurement("vehicle_health").
		AddTag("vehicle_id", v.ID).
		AddTag("depot", v.Depot).
		AddTag("status", string(v.Status)).
		AddTag("thermal_risk", string(v.ThermalRisk)).
		AddTag("snapshot_id", ev.SnapshotID).
		AddField("soh", v.SoH).
		AddField("soc", v.SoC).
		AddField("temperature", v.Temperature).
		AddField("cycle_count", v.CycleCount).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
