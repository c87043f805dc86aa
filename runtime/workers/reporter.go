package workers

import (
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// ReporterWorker logs the relay counters at a fixed interval and once more on shutdown.
type ReporterWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewReporterWorker(log *slog.Logger, monitoring *observability.MonitoringManager,
	interval time.Duration) *ReporterWorker {
	return &ReporterWorker{log: log, monitoring: monitoring, interval: interval}
}

// Run starts the reporting loop until context cancellation
func (w *ReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			w.log.Debug("Reporter stopped")
			return nil
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *ReporterWorker) report(startTime time.Time) {
	stats := w.monitoring.GetLatest()
	w.log.Info("Relay stats",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"connections", stats.Connections,
		"delivered", stats.Delivered,
		"dropped", stats.Dropped,
		"enqueued", stats.Enqueued,
		"enqueue_failures", stats.EnqueueFailures,
		"rejected_handshakes", stats.RejectedHandshakes,
		"cpu_percent", stats.CPUPercent,
		"rss_mb", stats.RSSMb,
		"goroutines", stats.Goroutines,
	)
}
