package main

import (
	"chat-relay/auth"
	"chat-relay/infrastructure/api"
	"chat-relay/infrastructure/grpc/health"
	"chat-relay/infrastructure/ws"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the relay.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the relay and blocks until a signal arrives or a server fails.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Backends
	backend, closeQueue, err := openQueueBackend(ctx, config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer closeQueue()

	members, closeMembership, err := openMembership(ctx, config, log)
	if err != nil {
		return exitRuntime, err
	}
	defer closeMembership()

	// 4. Core
	monitoring := observability.NewMonitoringManager(log)
	queue := repositories.NewOfflineQueue(log, backend, config.QueueRetention)
	presence := runtime.NewPresenceRegistry()
	rooms := runtime.NewRoomRegistry()
	router := runtime.NewRouter(log, presence, rooms, monitoring, config.SinkTimeout)
	tokens := auth.NewTokenManager(config.JWTSecret, config.JWTIssuer, 24*time.Hour)
	gateway := runtime.NewGateway(log, presence, rooms, router, members, tokens, monitoring)
	notifications := services.NewNotificationService(log, router, presence, members, queue, monitoring)

	// 5. Supervision
	healthServer := health.NewServer(log)
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewProcessStatsWorker(log, monitoring, config.SampleInterval),
		workers.NewReporterWorker(log, monitoring, config.MetricInterval),
		workers.NewBackendProbeWorker(log, healthServer.Health(), health.ServiceName,
			config.ProbeInterval, config.ProbeTimeout,
			workers.Check{Name: "queue:" + config.QueueBackend, Probe: backend.Ping},
			workers.Check{Name: "membership:" + config.MembershipBackend, Probe: members.Ping},
		),
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// 6. gRPC health server
	grpcListener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", config.Host, config.GrpcPort))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on gRPC port %d: %w", config.GrpcPort, err)
	}
	errChan := make(chan error, 2)
	go func() {
		if err := healthServer.Serve(ctx, grpcListener); err != nil {
			errChan <- err
		}
	}()

	// 7. HTTP server
	if config.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}
	socket := ws.NewHandler(log, gateway, ws.Options{
		SendBuffer:     config.ConnectionBufferSize,
		PingInterval:   config.PingInterval,
		PongWait:       config.PongWait,
		WriteWait:      config.WriteWait,
		MaxMessageSize: config.MaxMessageSize,
		AllowedOrigins: config.Origins(),
	})
	server := api.NewServer(log, notifications, services.NewQueueService(queue), monitoring,
		tokens, socket, config.InternalAPIKey)
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	code := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
		code = exitRuntime
		stop()
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "error", err)
	}
	<-supervisorDone
	monitoring.Log()
	log.Info("Program stopped cleanly")
	return code, runErr
}
