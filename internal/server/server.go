package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/store"
	pb "github.com/afoley587/coding-challenges-2025/grpc-user-service/proto"
)

// New builds a gRPC server with the logging and metrics interceptors and the
// user service registered on it.
func New(s store.UserStore, opts Options) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unaryInterceptor(opts.Logger, opts.Metrics)),
		grpc.ChainStreamInterceptor(streamInterceptor(opts.Logger, opts.Metrics)),
	)
	pb.RegisterUserServiceServer(grpcServer, NewGRPCServer(s, opts))
	return grpcServer
}

// Run starts a gRPC server listening on addr using the provided UserStore
// and, when opts.MetricsAddr is set, a metrics endpoint. It blocks until ctx
// is canceled, then stops both gracefully.
func Run(ctx context.Context, addr string, s store.UserStore, opts Options) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return Serve(ctx, lis, s, opts)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, lis net.Listener, s store.UserStore, opts Options) error {
	grpcServer := New(s, opts)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		opts.Logger.Info().Str("addr", lis.Addr().String()).Msg("serving gRPC")
		return grpcServer.Serve(lis)
	})

	var metricsServer *http.Server
	if opts.MetricsAddr != "" && opts.Metrics != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", opts.Metrics.Handler())
		metricsServer = &http.Server{
			Addr:              opts.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			opts.Logger.Info().Str("addr", opts.MetricsAddr).Msg("serving metrics")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		opts.Logger.Info().Msg("shutting down")
		grpcServer.GracefulStop()
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}
		return nil
	})

	return g.Wait()
}
