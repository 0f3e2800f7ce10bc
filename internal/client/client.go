package client

import (
	"context"
	"errors"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/afoley587/coding-challenges-2025/grpc-user-service/proto"
)

func (c *GRPCClient) GetUser(ctx context.Context, id string) (*pb.User, error) {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()
	return c.rpc.GetUser(ctx, &pb.GetUserRequest{Id: &pb.UserId{Id: id}})
}

// ListUsers streams up to limit users to fn in server order. A zero limit
// leaves the choice to the server. Returning an error from fn stops the
// stream.
func (c *GRPCClient) ListUsers(ctx context.Context, limit uint32, fn func(*pb.User) error) error {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()

	req := &pb.ListUsersRequest{}
	if limit > 0 {
		req.Limit = proto.Uint32(limit)
	}
	stream, err := c.rpc.ListUsers(ctx, req)
	if err != nil {
		return err
	}
	for {
		user, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(user); err != nil {
			return err
		}
	}
}

func (c *GRPCClient) CreateUser(ctx context.Context, id, name, mail string) error {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()
	_, err := c.rpc.CreateUser(ctx, &pb.CreateUserRequest{Id: &pb.UserId{Id: id}, Name: name, Mail: mail})
	return err
}

func (c *GRPCClient) UpdateUserName(ctx context.Context, id, name string) error {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()
	_, err := c.rpc.UpdateUserName(ctx, &pb.UpdateUserNameRequest{Id: &pb.UserId{Id: id}, Name: name})
	return err
}

func (c *GRPCClient) UpdateUserMail(ctx context.Context, id, mail string) error {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()
	_, err := c.rpc.UpdateUserMail(ctx, &pb.UpdateUserMailRequest{Id: &pb.UserId{Id: id}, Mail: mail})
	return err
}

func (c *GRPCClient) DeleteUser(ctx context.Context, id string) error {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()
	_, err := c.rpc.DeleteUser(ctx, &pb.DeleteUserRequest{Id: &pb.UserId{Id: id}})
	return err
}

func (c *GRPCClient) ResetStore(ctx context.Context) error {
	ctx, cxl := context.WithTimeout(ctx, c.timeout)
	defer cxl()
	_, err := c.rpc.ResetStore(ctx, &emptypb.Empty{})
	return err
}
