// Package app wires the dataset lifecycle, metrics sinks and HTTP API into a
// runnable service.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kilianp07/fleethealth/api/calculator"
	"github.com/kilianp07/fleethealth/api/fleet"
	"github.com/kilianp07/fleethealth/api/series"
	"github.com/kilianp07/fleethealth/config"
	"github.com/kilianp07/fleethealth/core/dataset"
	coremetrics "github.com/kilianp07/fleethealth/core/metrics"
	"github.com/kilianp07/fleethealth/infra/logger"
	"github.com/kilianp07/fleethealth/infra/metrics"
	"github.com/kilianp07/fleethealth/internal/eventbus"
)

// Service orchestrates the dataset store, metrics sinks and the API server.
type Service struct {
	Store dataset.Store

	cfg         *config.Config
	bus         eventbus.EventBus
	sink        coremetrics.MetricsSink
	influx      *metrics.InfluxSink
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration and builds the initial
// dataset snapshot.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.MetricsSink
	var influx *metrics.InfluxSink
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		sink := metrics.NewInfluxSinkWithFallback(
			cfg.Metrics.InfluxURL, cfg.Metrics.InfluxToken,
			cfg.Metrics.InfluxOrg, cfg.Metrics.InfluxBucket)
		if is, ok := sink.(*metrics.InfluxSink); ok {
			influx = is
		}
		sinks = append(sinks, sink)
	}
	var sink coremetrics.MetricsSink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	svc := &Service{
		cfg:         cfg,
		bus:         eventbus.New(),
		sink:        sink,
		influx:      influx,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}
	svc.Store = dataset.NewMemoryStore(svc.buildDataset())
	return svc, nil
}

// buildDataset generates a snapshot and records the build in the sinks.
func (s *Service) buildDataset() *dataset.Dataset {
	start := time.Now()
	ds := dataset.Build(s.cfg.Fleet, s.cfg.Series, start)
	s.record(ds, time.Since(start))
	s.log.Infof("dataset %s built: %d vehicles in %s", ds.SnapshotID, len(ds.Fleet), time.Since(start))
	return ds
}

func (s *Service) record(ds *dataset.Dataset, dur time.Duration) {
	sum := ds.Summarise()
	if err := s.sink.RecordDatasetBuild(coremetrics.DatasetBuildEvent{
		SnapshotID:   ds.SnapshotID,
		VehicleCount: sum.VehicleCount,
		DepotCount:   sum.DepotCount,
		Duration:     dur,
		Time:         ds.GeneratedAt,
	}); err != nil {
		s.log.Errorf("record dataset build: %v", err)
	}
	if rec, ok := s.sink.(coremetrics.FleetSummaryRecorder); ok {
		if err := rec.RecordFleetSummary(coremetrics.FleetSummaryEvent{
			SnapshotID:    ds.SnapshotID,
			DepotAvgSoH:   sum.DepotAvgSoH,
			StatusCounts:  sum.StatusCounts,
			ThermalCounts: sum.ThermalCounts,
			Time:          ds.GeneratedAt,
		}); err != nil {
			s.log.Errorf("record fleet summary: %v", err)
		}
	}
	if rec, ok := s.sink.(coremetrics.VehicleSnapshotRecorder); ok {
		for _, v := range ds.Fleet {
			if err := rec.RecordVehicleSnapshot(coremetrics.VehicleSnapshotEvent{
				Vehicle:    v,
				SnapshotID: ds.SnapshotID,
				Time:       ds.GeneratedAt,
			}); err != nil {
				s.log.Errorf("record vehicle snapshot %s: %v", v.ID, err)
				break
			}
		}
	}
}

// Handler assembles the API routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/fleet", fleet.NewListHandler(s.Store))
	mux.Handle("/api/fleet/summary", fleet.NewSummaryHandler(s.Store))
	mux.Handle("/api/fleet/regenerate", fleet.NewRegenerateHandler(s.Store, s.bus))
	mux.Handle("/api/vehicles/health", fleet.NewHealthHandler(s.Store))
	mux.Handle("/api/series", series.NewSeriesHandler(s.Store))
	mux.Handle("/api/thermal-map", series.NewThermalMapHandler(s.Store))
	mux.Handle("/api/correlation", series.NewCorrelationHandler(s.Store))
	mux.Handle("/api/compare", series.NewCompareHandler(s.Store))
	mux.Handle("/api/calculator/estimate", calculator.NewEstimateHandler())
	mux.Handle("/api/calculator/models", calculator.NewModelsHandler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Run starts the API server, the rebuild loop and, when enabled, the
// Prometheus endpoint. It blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	go s.rebuildLoop(ctx)
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{Addr: s.cfg.Server.Addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("server shutdown: %v", err)
		}
	}()
	s.log.Infof("api listening on %s", s.cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// rebuildLoop consumes rebuild requests from the bus and swaps in fresh
// snapshots.
func (s *Service) rebuildLoop(ctx context.Context) {
	sub := s.bus.Subscribe()
	defer s.bus.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			req, ok := ev.(eventbus.RebuildRequested)
			if !ok {
				continue
			}
			s.log.Infof("rebuilding dataset (reason: %s)", req.Reason)
			s.Store.Swap(s.buildDataset())
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if s.influx != nil {
		s.influx.Close()
	}
	return nil
}
