package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func servingStatus(t *testing.T, server *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	resp, err := server.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestBackendProbeWorker_FollowsBackendState(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := health.NewServer()

	var down atomic.Bool
	queue := Check{Name: "queue", Probe: func(ctx context.Context) error {
		if down.Load() {
			return fmt.Errorf("connection refused")
		}
		return nil
	}}
	worker := NewBackendProbeWorker(log, server, "chat.relay", 10*time.Millisecond, 5*time.Millisecond, queue)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Given the backend answers, the relay is serving
	req.Eventually(func() bool {
		return servingStatus(t, server, "chat.relay") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	// When the backend goes down
	down.Store(true)

	// Then the relay stops serving
	req.Eventually(func() bool {
		return servingStatus(t, server, "chat.relay") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, server, ""))

	// And it recovers with the backend
	down.Store(false)
	req.Eventually(func() bool {
		return servingStatus(t, server, "chat.relay") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	req.NoError(<-done)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, server, "chat.relay"))
}
