package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Server runs the gRPC health service and the REST gateway in front of it.
type Server struct {
	grpcAddr string
	restAddr string
	status   *StatusHandler
	health   *health.Server
	grpc     *grpc.Server
	logger   *zap.Logger
}

// NewServer builds a Server. Nothing listens until Run.
func NewServer(grpcAddr, restAddr string, status *StatusHandler, logger *zap.Logger) *Server {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	return &Server{
		grpcAddr: grpcAddr,
		restAddr: restAddr,
		status:   status,
		health:   hs,
		grpc:     grpcServer,
		logger:   logger,
	}
}

// SetServing flips the reported health of the process.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
}

// Run listens on the configured addresses and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	grpcLis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("listen grpc %s: %w", s.grpcAddr, err)
	}
	restLis, err := net.Listen("tcp", s.restAddr)
	if err != nil {
		_ = grpcLis.Close()
		return fmt.Errorf("listen rest %s: %w", s.restAddr, err)
	}
	return s.Serve(ctx, grpcLis, restLis)
}

// Serve serves on already open listeners until ctx is canceled.
func (s *Server) Serve(ctx context.Context, grpcLis, restLis net.Listener) error {
	conn, err := grpc.NewClient(grpcLis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial grpc %s: %w", grpcLis.Addr(), err)
	}
	defer func() {
		_ = conn.Close()
	}()

	handler, err := s.restHandler(healthpb.NewHealthClient(conn))
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("starting gRPC server", zap.String("addr", grpcLis.Addr().String()))
		return s.grpc.Serve(grpcLis)
	})
	g.Go(func() error {
		s.logger.Info("starting HTTP server", zap.String("addr", restLis.Addr().String()))
		if err := srv.Serve(restLis); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down status servers")
		s.health.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.grpc.GracefulStop()
		return err
	})
	return g.Wait()
}

func (s *Server) restHandler(healthClient healthpb.HealthClient) (http.Handler, error) {
	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthClient))
	if err := gw.HandlePath(http.MethodGet, "/v1/status", s.status.ServeStatus); err != nil {
		return nil, fmt.Errorf("register status route: %w", err)
	}
	if err := gw.HandlePath(http.MethodGet, "/v1/provider", s.status.ServeProvider); err != nil {
		return nil, fmt.Errorf("register provider route: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux), nil
}
