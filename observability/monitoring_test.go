package observability

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mm.ConnectionOpened()
			mm.IncrDelivered()
			mm.IncrEnqueued(2)
		}()
	}
	wg.Wait()
	mm.ConnectionClosed()
	mm.IncrDropped()
	mm.IncrEnqueueFailures(3)
	mm.IncrRejectedHandshakes()
	mm.UpdateProcess(12.5, 64*1024*1024)

	stats := mm.GetLatest()
	req.Equal(int64(9), stats.Connections)
	req.Equal(uint64(10), stats.Delivered)
	req.Equal(uint64(1), stats.Dropped)
	req.Equal(uint64(20), stats.Enqueued)
	req.Equal(uint64(3), stats.EnqueueFailures)
	req.Equal(uint64(1), stats.RejectedHandshakes)
	req.Equal(12.5, stats.CPUPercent)
	req.Equal(uint64(64), stats.RSSMb)
	req.False(stats.SampledAt.IsZero())
	req.Positive(stats.Goroutines)
}
