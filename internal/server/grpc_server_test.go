package server_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/metrics"
	srv "github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/server"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/store"
	pb "github.com/afoley587/coding-challenges-2025/grpc-user-service/proto"
)

// startTestServer spins up a gRPC server on a random local port backed by
// the provided store and returns a connected client. Everything is torn
// down when the test ends.
func startTestServer(t *testing.T, us store.UserStore, opts srv.Options) pb.UserServiceClient {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "failed to listen")

	grpcServer := srv.New(us, opts)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err, "failed to dial server")
	t.Cleanup(func() { _ = conn.Close() })
	return pb.NewUserServiceClient(conn)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func uid(id string) *pb.UserId { return &pb.UserId{Id: id} }

func requireCode(t *testing.T, want codes.Code, err error) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, status.Code(err), "unexpected status: %v", err)
}

func seed(t *testing.T, ctx context.Context, c pb.UserServiceClient) {
	t.Helper()
	for _, u := range []*pb.CreateUserRequest{
		{Id: uid("12"), Name: "Fede", Mail: "fede@test.com"},
		{Id: uid("23"), Name: "Abel", Mail: "abel@test.com"},
	} {
		_, err := c.CreateUser(ctx, u)
		require.NoError(t, err, "CreateUser(%s)", u.GetId().GetId())
	}
}

func listAll(t *testing.T, ctx context.Context, c pb.UserServiceClient, req *pb.ListUsersRequest) ([]*pb.User, error) {
	t.Helper()
	stream, err := c.ListUsers(ctx, req)
	require.NoError(t, err, "ListUsers RPC failed")
	var users []*pb.User
	for {
		u, err := stream.Recv()
		if err == io.EOF {
			return users, nil
		}
		if err != nil {
			return users, err
		}
		users = append(users, u)
	}
}

func ids(users []*pb.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.GetId().GetId()
	}
	return out
}

// TestGrpcService walks the Fede/Abel scenario end to end through gRPC
// rather than invoking the store directly.
func TestGrpcService(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)
	seed(t, ctx, c)

	users, err := listAll(t, ctx, c, &pb.ListUsersRequest{Limit: proto.Uint32(10)})
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "23"}, ids(users))

	got, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")})
	require.NoError(t, err)
	assert.Equal(t, "Fede", got.GetName())
	assert.Equal(t, "fede@test.com", got.GetMail())

	_, err = c.UpdateUserMail(ctx, &pb.UpdateUserMailRequest{Id: uid("12"), Mail: "fede2@test.com"})
	require.NoError(t, err)

	got, err = c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")})
	require.NoError(t, err)
	assert.Equal(t, "12", got.GetId().GetId())
	assert.Equal(t, "Fede", got.GetName())
	assert.Equal(t, "fede2@test.com", got.GetMail())
}

func TestGetUser(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)

	for _, id := range []string{"12", "missing", "x'; DROP TABLE users; --"} {
		_, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid(id)})
		requireCode(t, codes.NotFound, err)
	}

	_, err := c.GetUser(ctx, &pb.GetUserRequest{})
	requireCode(t, codes.InvalidArgument, err)
	_, err = c.GetUser(ctx, &pb.GetUserRequest{Id: uid("")})
	requireCode(t, codes.InvalidArgument, err)
}

func TestCreateUser(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)

	t.Run("round trip", func(t *testing.T) {
		_, err := c.CreateUser(ctx, &pb.CreateUserRequest{Id: uid("7"), Name: "Ana", Mail: "ana.b+tag@mail-host.example.org"})
		require.NoError(t, err)
		got, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("7")})
		require.NoError(t, err)
		assert.True(t, proto.Equal(&pb.User{Id: uid("7"), Name: "Ana", Mail: "ana.b+tag@mail-host.example.org"}, got), "got %v", got)
	})

	t.Run("malformed mail does not touch the store", func(t *testing.T) {
		_, err := c.CreateUser(ctx, &pb.CreateUserRequest{Id: uid("8"), Name: "Bad", Mail: "not-an-email"})
		requireCode(t, codes.InvalidArgument, err)
		_, err = c.GetUser(ctx, &pb.GetUserRequest{Id: uid("8")})
		requireCode(t, codes.NotFound, err)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := c.CreateUser(ctx, &pb.CreateUserRequest{Name: "NoId", Mail: "noid@test.com"})
		requireCode(t, codes.InvalidArgument, err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := c.CreateUser(ctx, &pb.CreateUserRequest{Id: uid("7"), Name: "Again", Mail: "again@test.com"})
		requireCode(t, codes.AlreadyExists, err)
		got, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("7")})
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.GetName())
	})
}

func TestStrictMail(t *testing.T) {
	ctx := testContext(t)
	mail := "fede@test.com>garbage"

	loose := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	_, err := loose.CreateUser(ctx, &pb.CreateUserRequest{Id: uid("1"), Name: "Fede", Mail: mail})
	require.NoError(t, err, "prefix anchored pattern accepts trailing text")

	strict := startTestServer(t, store.NewInMemoryStore(), srv.Options{StrictMail: true})
	_, err = strict.CreateUser(ctx, &pb.CreateUserRequest{Id: uid("1"), Name: "Fede", Mail: mail})
	requireCode(t, codes.InvalidArgument, err)
}

func TestUpdateUser(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)
	seed(t, ctx, c)

	_, err := c.UpdateUserName(ctx, &pb.UpdateUserNameRequest{Id: uid("12"), Name: "X"})
	require.NoError(t, err)
	got, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")})
	require.NoError(t, err)
	assert.Equal(t, "X", got.GetName())
	assert.Equal(t, "fede@test.com", got.GetMail(), "mail must be unchanged")

	_, err = c.UpdateUserName(ctx, &pb.UpdateUserNameRequest{Id: uid("99"), Name: "X"})
	requireCode(t, codes.NotFound, err)

	_, err = c.UpdateUserMail(ctx, &pb.UpdateUserMailRequest{Id: uid("12"), Mail: "nope"})
	requireCode(t, codes.InvalidArgument, err)
	got, err = c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")})
	require.NoError(t, err)
	assert.Equal(t, "fede@test.com", got.GetMail())

	_, err = c.UpdateUserMail(ctx, &pb.UpdateUserMailRequest{Mail: "ok@test.com"})
	requireCode(t, codes.InvalidArgument, err)
	_, err = c.UpdateUserName(ctx, &pb.UpdateUserNameRequest{Name: "X"})
	requireCode(t, codes.InvalidArgument, err)
}

func TestListUsers(t *testing.T) {
	ctx := testContext(t)

	t.Run("empty store", func(t *testing.T) {
		c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
		users, err := listAll(t, ctx, c, &pb.ListUsersRequest{Limit: proto.Uint32(10)})
		requireCode(t, codes.NotFound, err)
		assert.Empty(t, users)
	})

	t.Run("limit", func(t *testing.T) {
		c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
		seed(t, ctx, c)
		_, err := c.CreateUser(ctx, &pb.CreateUserRequest{Id: uid("05"), Name: "Ana", Mail: "ana@test.com"})
		require.NoError(t, err)

		users, err := listAll(t, ctx, c, &pb.ListUsersRequest{Limit: proto.Uint32(2)})
		require.NoError(t, err)
		assert.Equal(t, []string{"12", "23"}, ids(users))
	})

	t.Run("default limit", func(t *testing.T) {
		c := startTestServer(t, store.NewInMemoryStore(), srv.Options{DefaultLimit: 1})
		seed(t, ctx, c)
		users, err := listAll(t, ctx, c, &pb.ListUsersRequest{})
		require.NoError(t, err)
		assert.Equal(t, []string{"12"}, ids(users))
	})

	t.Run("more rows than queue capacity", func(t *testing.T) {
		s := store.NewInMemoryStore()
		for i := 0; i < 200; i++ {
			id := fmt.Sprintf("%03d", i)
			require.NoError(t, s.CreateUser(ctx, store.CreateInput{ID: id, Name: id, Mail: id + "@test.com"}))
		}
		c := startTestServer(t, s, srv.Options{QueueCapacity: 4})
		users, err := listAll(t, ctx, c, &pb.ListUsersRequest{})
		require.NoError(t, err)
		require.Len(t, users, 200)
		for i, u := range users {
			assert.Equal(t, fmt.Sprintf("%03d", i), u.GetId().GetId())
		}
	})
}

func TestDeleteUser(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)
	seed(t, ctx, c)

	_, err := c.DeleteUser(ctx, &pb.DeleteUserRequest{Id: uid("12")})
	require.NoError(t, err)
	_, err = c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")})
	requireCode(t, codes.NotFound, err)

	_, err = c.DeleteUser(ctx, &pb.DeleteUserRequest{Id: uid("12")})
	requireCode(t, codes.NotFound, err)
	_, err = c.DeleteUser(ctx, &pb.DeleteUserRequest{})
	requireCode(t, codes.InvalidArgument, err)
}

func TestResetStore(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)
	seed(t, ctx, c)

	_, err := c.ResetStore(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	_, err = listAll(t, ctx, c, &pb.ListUsersRequest{})
	requireCode(t, codes.NotFound, err)

	seed(t, ctx, c)
}

// failingStore reports a transient backend failure on every call.
type failingStore struct{ store.UserStore }

func (failingStore) GetUser(context.Context, string) (store.User, error) {
	return store.User{}, store.Classify(errors.New("connection reset by peer"))
}

func (failingStore) ListUsers(context.Context, uint32) ([]store.User, error) {
	return nil, store.Classify(errors.New("connection reset by peer"))
}

func TestStoreFailureIsInternal(t *testing.T) {
	c := startTestServer(t, failingStore{}, srv.Options{})
	ctx := testContext(t)

	_, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")})
	requireCode(t, codes.Internal, err)
	assert.NotContains(t, status.Convert(err).Message(), "connection reset", "cause must not leak to callers")

	_, err = listAll(t, ctx, c, &pb.ListUsersRequest{})
	requireCode(t, codes.Internal, err)
}

func TestRequestIDHeader(t *testing.T) {
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{})
	ctx := testContext(t)

	var header metadata.MD
	_, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")}, grpc.Header(&header))
	requireCode(t, codes.NotFound, err)
	require.Len(t, header.Get(srv.RequestIDHeader), 1)
	assert.NotEmpty(t, header.Get(srv.RequestIDHeader)[0])

	ctx = metadata.AppendToOutgoingContext(ctx, srv.RequestIDHeader, "req-42")
	_, err = c.GetUser(ctx, &pb.GetUserRequest{Id: uid("12")}, grpc.Header(&header))
	requireCode(t, codes.NotFound, err)
	assert.Equal(t, []string{"req-42"}, header.Get(srv.RequestIDHeader))
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	c := startTestServer(t, store.NewInMemoryStore(), srv.Options{Metrics: m})
	ctx := testContext(t)
	seed(t, ctx, c)

	_, err := c.GetUser(ctx, &pb.GetUserRequest{Id: uid("404")})
	requireCode(t, codes.NotFound, err)
	_, err = listAll(t, ctx, c, &pb.ListUsersRequest{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `usersvc_rpc_requests_total{code="OK",method="/users.UserService/CreateUser"} 2`)
	assert.Contains(t, body, `usersvc_rpc_requests_total{code="NotFound",method="/users.UserService/GetUser"} 1`)
	assert.Contains(t, body, "usersvc_stream_items_total 2")
}
