package workers

import (
	"bytes"
	"chat-relay/observability"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestReporterWorker_LogsCountersUntilStopped(t *testing.T) {
	req := require.New(t)
	var out lockedBuffer
	log := slog.New(slog.NewTextHandler(&out, nil))
	monitoring := observability.NewMonitoringManager(log)
	monitoring.IncrDelivered()
	monitoring.IncrEnqueued(3)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	req.NoError(NewReporterWorker(log, monitoring, 20*time.Millisecond).Run(ctx))

	// Ticks plus the final report on shutdown
	req.GreaterOrEqual(strings.Count(out.String(), "Relay stats"), 2)
	req.Contains(out.String(), "delivered=1")
	req.Contains(out.String(), "enqueued=3")
}
