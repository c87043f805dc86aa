package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name probed by orchestrators, next to the overall "" service.
const ServiceName = "chat.relay.v1.Relay"

type Server struct {
	log    *slog.Logger
	grpc   *grpc.Server
	health *grpchealth.Server
}

// NewServer starts NOT_SERVING, the backend probe flips it once the queue and membership stores answer.
func NewServer(log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(sdkgrpc.UnaryLoggingInterceptor(log)))
	h := grpchealth.NewServer()
	h.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, h)
	return &Server{log: log, grpc: s, health: h}
}

// Health is the status holder handed to the probe worker.
func (s *Server) Health() *grpchealth.Server { return s.health }

// Serve blocks until the listener fails or ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting gRPC health server", "address", listener.Addr().String())
		if err := s.grpc.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpc.GracefulStop()
		return nil
	case err, ok := <-errChan:
		if !ok {
			return nil
		}
		return err
	}
}
