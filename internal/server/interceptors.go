package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/metrics"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "x-request-id"

func unaryInterceptor(base zerolog.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		ctx, log, id := requestLogger(ctx, base, info.FullMethod)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		resp, err := handler(ctx, req)
		finish(log, m, info.FullMethod, start, err)
		return resp, err
	}
}

func streamInterceptor(base zerolog.Logger, m *metrics.Metrics) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		ctx, log, id := requestLogger(ss.Context(), base, info.FullMethod)
		_ = ss.SetHeader(metadata.Pairs(RequestIDHeader, id))

		err := handler(srv, &loggedStream{ServerStream: ss, ctx: ctx})
		finish(log, m, info.FullMethod, start, err)
		return err
	}
}

// loggedStream swaps in the context that carries the request logger.
type loggedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *loggedStream) Context() context.Context { return s.ctx }

// requestLogger attaches a logger scoped to one call. The caller's request
// id is reused when it sends one.
func requestLogger(ctx context.Context, base zerolog.Logger, method string) (context.Context, *zerolog.Logger, string) {
	id := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(RequestIDHeader); len(v) > 0 && v[0] != "" {
			id = v[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	log := base.With().
		Str("request_id", id).
		Str("method", method).
		Str("peer", peerAddr(ctx)).
		Logger()
	return log.WithContext(ctx), &log, id
}

func finish(log *zerolog.Logger, m *metrics.Metrics, method string, start time.Time, err error) {
	elapsed := time.Since(start)
	st := status.Convert(err)
	m.ObserveRPC(method, st.Code(), elapsed)

	ev := log.Info()
	if err != nil {
		ev = log.Warn().Str("error", st.Message())
	}
	ev.Stringer("code", st.Code()).Dur("elapsed", elapsed).Msg("rpc finished")
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}
