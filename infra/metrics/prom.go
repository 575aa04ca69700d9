package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/fleethealth/core/metrics"
)

// PromSink records dataset lifecycle events in Prometheus metrics.
type PromSink struct {
	builds        prometheus.Counter
	buildDuration prometheus.Histogram
	vehicles      *prometheus.GaugeVec
	depotSoh      *prometheus.GaugeVec
}

// NewPromSink registers the fleet metrics on the provided registerer. If reg
// is nil, the default registerer is used. Already-registered collectors are
// reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	builds := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fleet_dataset_builds_total",
		Help: "Total number of synthetic dataset builds",
	})
	buildDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fleet_dataset_build_seconds",
		Help:    "Time spent generating a dataset snapshot",
		Buckets: prometheus.DefBuckets,
	})
	vehicles := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_vehicles",
		Help: "Vehicles in the current snapshot by health status",
	}, []string{"status"})
	depotSoh := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_soh_average",
		Help: "Average state of health per depot",
	}, []string{"depot"})

	if err := reg.Register(builds); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			builds = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(buildDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			buildDuration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(vehicles); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			vehicles = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(depotSoh); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			depotSoh = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{builds: builds, buildDuration: buildDuration, vehicles: vehicles, depotSoh: depotSoh}, nil
}

// RecordDatasetBuild increments the build counter and observes the duration.
func (s *PromSink) RecordDatasetBuild(ev coremetrics.DatasetBuildEvent) error {
	s.builds.Inc()
	s.buildDuration.Observe(ev.Duration.Seconds())
	return nil
}

// RecordFleetSummary refreshes the per-status and per-depot gauges.
func (s *PromSink) RecordFleetSummary(ev coremetrics.FleetSummaryEvent) error {
	s.vehicles.Reset()
	for status, n := range ev.StatusCounts {
		s.vehicles.WithLabelValues(string(status)).Set(float64(n))
	}
	s.depotSoh.Reset()
	for depot, soh := range ev.DepotAvgSoH {
		s.depotSoh.WithLabelValues(depot).Set(soh)
	}
	return nil
}
