package client

import (
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/afoley587/coding-challenges-2025/grpc-user-service/proto"
)

type DialConfig struct {
	Address string
	// Timeout bounds each call. Zero means 10 seconds.
	Timeout time.Duration
}

type GRPCClient struct {
	conn    *grpc.ClientConn
	rpc     pb.UserServiceClient
	timeout time.Duration
}

func (c *GRPCClient) Client() pb.UserServiceClient {
	return c.rpc
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func NewClient(cfg DialConfig) (*GRPCClient, error) {
	conn, err := dial(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to dial server: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GRPCClient{conn: conn, rpc: pb.NewUserServiceClient(conn), timeout: timeout}, nil
}

// dial opens a plaintext connection; the service does not negotiate
// transport security.
func dial(cfg DialConfig) (*grpc.ClientConn, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("server address is required")
	}
	return grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
}
