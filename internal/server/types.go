package server

import (
	"github.com/rs/zerolog"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/metrics"
)

// Options configure the user service and the gRPC server around it.
type Options struct {
	// DefaultLimit applies to ListUsers requests without a limit.
	DefaultLimit uint32
	// QueueCapacity bounds the number of users in flight per stream.
	QueueCapacity int
	// StrictMail rejects trailing text after a valid looking address.
	StrictMail bool

	// MetricsAddr, when set, serves /metrics over HTTP next to the gRPC
	// listener.
	MetricsAddr string

	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

func (o Options) withDefaults() Options {
	if o.DefaultLimit == 0 {
		o.DefaultLimit = 1024
	}
	if o.QueueCapacity <= 0 {
		o.QueueCapacity = 1024
	}
	return o
}
