package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/MKhiriev/meme-forge/internal/config"
	myGRPC "github.com/MKhiriev/meme-forge/internal/handler/grpc"
	"github.com/MKhiriev/meme-forge/internal/logger"
)

const healthCheckInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server *grpc.Server
	addr   string

	healthCtx    context.Context
	cancelHealth context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	handler.Register(server)

	healthCtx, cancel := context.WithCancel(context.Background())

	return &grpcServer{
		handler:      handler,
		server:       server,
		addr:         cfg.GRPCAddress,
		healthCtx:    healthCtx,
		cancelHealth: cancel,
		logger:       logger,
	}
}

func (g *grpcServer) name() string    { return "grpc" }
func (g *grpcServer) address() string { return g.addr }

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.addr)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.addr, err)
	}

	go g.handler.Run(g.healthCtx, healthCheckInterval)

	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING first so clients drain before the listener
// closes. Connections still open when ctx expires are closed forcibly.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.cancelHealth()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.logger.Warn().Msg("gRPC graceful stop timed out, closing connections")
		g.server.Stop()
		return ctx.Err()
	}
}
