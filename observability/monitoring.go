package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// MonitoringStats aggregates the relay counters exposed on the stats endpoint.
type MonitoringStats struct {
	// --- DELIVERY METRICS ---
	Connections        int64  `json:"connections"`
	Delivered          uint64 `json:"delivered"`
	Dropped            uint64 `json:"dropped"`
	Enqueued           uint64 `json:"enqueued"`
	EnqueueFailures    uint64 `json:"enqueue_failures"`
	RejectedHandshakes uint64 `json:"rejected_handshakes"`

	// --- SYSTEM METRICS ---
	CPUPercent float64   `json:"cpu_percent"`
	RSSMb      uint64    `json:"rss_mb"`
	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	Goroutines int       `json:"goroutines"`
	SampledAt  time.Time `json:"sampled_at"`
}

// MonitoringManager holds the live counters. Counters are atomics,
// mu only guards the process samples.
type MonitoringManager struct {
	log *slog.Logger
	mu  sync.RWMutex

	connections        int64
	delivered          uint64
	dropped            uint64
	enqueued           uint64
	enqueueFailures    uint64
	rejectedHandshakes uint64

	cpuPercent float64
	rssBytes   uint64
	sampledAt  time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) ConnectionOpened() { atomic.AddInt64(&mm.connections, 1) }

func (mm *MonitoringManager) ConnectionClosed() { atomic.AddInt64(&mm.connections, -1) }

func (mm *MonitoringManager) IncrDelivered() { atomic.AddUint64(&mm.delivered, 1) }

func (mm *MonitoringManager) IncrDropped() { atomic.AddUint64(&mm.dropped, 1) }

func (mm *MonitoringManager) IncrEnqueued(n int) { atomic.AddUint64(&mm.enqueued, uint64(n)) }

func (mm *MonitoringManager) IncrEnqueueFailures(n int) {
	atomic.AddUint64(&mm.enqueueFailures, uint64(n))
}

func (mm *MonitoringManager) IncrRejectedHandshakes() { atomic.AddUint64(&mm.rejectedHandshakes, 1) }

// UpdateProcess stores the latest sample taken by the process stats worker.
func (mm *MonitoringManager) UpdateProcess(cpuPercent float64, rssBytes uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.cpuPercent = cpuPercent
	mm.rssBytes = rssBytes
	mm.sampledAt = time.Now()
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mm.mu.RLock()
	defer mm.mu.RUnlock()

	return MonitoringStats{
		Connections:        atomic.LoadInt64(&mm.connections),
		Delivered:          atomic.LoadUint64(&mm.delivered),
		Dropped:            atomic.LoadUint64(&mm.dropped),
		Enqueued:           atomic.LoadUint64(&mm.enqueued),
		EnqueueFailures:    atomic.LoadUint64(&mm.enqueueFailures),
		RejectedHandshakes: atomic.LoadUint64(&mm.rejectedHandshakes),
		CPUPercent:         mm.cpuPercent,
		RSSMb:              mm.rssBytes / 1024 / 1024,
		AllocMemMb:         m.Alloc / 1024 / 1024,
		NumGC:              m.NumGC,
		Goroutines:         runtime.NumGoroutine(),
		SampledAt:          mm.sampledAt,
	}
}

// Log dumps the counters, used on shutdown.
func (mm *MonitoringManager) Log() {
	stats := mm.GetLatest()
	mm.log.Info("Relay counters",
		"connections", stats.Connections,
		"delivered", stats.Delivered,
		"dropped", stats.Dropped,
		"enqueued", stats.Enqueued,
		"enqueue_failures", stats.EnqueueFailures,
		"rejected_handshakes", stats.RejectedHandshakes,
	)
}
