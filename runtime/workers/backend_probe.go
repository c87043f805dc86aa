package workers

import (
	"context"
	"log/slog"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthSetter is satisfied by *health.Server from google.golang.org/grpc/health.
type HealthSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// Check pings one dependency.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// BackendProbeWorker marks the relay NOT_SERVING as soon as one of its
// backends stops answering, and SERVING again once they all do.
type BackendProbeWorker struct {
	log      *slog.Logger
	health   HealthSetter
	service  string
	checks   []Check
	interval time.Duration
	timeout  time.Duration
}

func NewBackendProbeWorker(log *slog.Logger, health HealthSetter, service string,
	interval, timeout time.Duration, checks ...Check) *BackendProbeWorker {
	return &BackendProbeWorker{
		log:      log,
		health:   health,
		service:  service,
		checks:   checks,
		interval: interval,
		timeout:  timeout,
	}
}

func (w *BackendProbeWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			w.health.SetServingStatus(w.service, healthpb.HealthCheckResponse_NOT_SERVING)
			return nil
		case <-ticker.C:
			w.probe(ctx)
		}
	}
}

func (w *BackendProbeWorker) probe(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	for _, check := range w.checks {
		probeCtx, cancel := context.WithTimeout(ctx, w.timeout)
		err := check.Probe(probeCtx)
		cancel()
		if err != nil {
			w.log.Warn("Backend unreachable", "backend", check.Name, "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	w.health.SetServingStatus(w.service, status)
	// The empty service name reports the server as a whole
	w.health.SetServingStatus("", status)
}
