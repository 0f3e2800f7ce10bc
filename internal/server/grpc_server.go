package server

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/metrics"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/relay"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/store"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/validate"
	pb "github.com/afoley587/coding-challenges-2025/grpc-user-service/proto"
)

// Operation tags used in log lines.
const (
	opGetUser        = "GET_USER"
	opListUsers      = "LIST_USERS"
	opCreateUser     = "CREATE_USER"
	opUpdateUserName = "UPDATE_USER_NAME"
	opUpdateUserMail = "UPDATE_USER_MAIL"
	opDeleteUser     = "DELETE_USER"
	opResetStore     = "RESET_STORE"
)

// grpcServer implements the generated gRPC interface by validating requests
// and delegating to a UserStore. It holds no state of its own beyond
// configuration, so one instance serves all concurrent calls.
type grpcServer struct {
	pb.UnimplementedUserServiceServer
	store         store.UserStore
	mail          *validate.Mail
	defaultLimit  uint32
	queueCapacity int
	metrics       *metrics.Metrics
}

// NewGRPCServer constructs the UserService implementation backed by the
// provided store.
func NewGRPCServer(st store.UserStore, opts Options) pb.UserServiceServer {
	opts = opts.withDefaults()
	// The built-in pattern always compiles; a nil validator would surface
	// as InternalValidationError on every mail check.
	mail, err := validate.NewMail("", opts.StrictMail)
	if err != nil {
		opts.Logger.Error().Err(err).Msg("mail validator unavailable")
	}
	return &grpcServer{
		store:         st,
		mail:          mail,
		defaultLimit:  opts.DefaultLimit,
		queueCapacity: opts.QueueCapacity,
		metrics:       opts.Metrics,
	}
}

// GetUser returns the user stored under the requested id.
func (s *grpcServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
	id, err := requireID(req.GetId())
	if err != nil {
		return nil, fail(ctx, opGetUser, err)
	}
	zerolog.Ctx(ctx).Debug().Str("op", opGetUser).Str("id", id).Msg("fetching user")

	u, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fail(ctx, opGetUser, err)
	}
	return toProto(u), nil
}

// ListUsers fetches up to limit users in one round trip and streams them
// through a bounded relay. An empty result fails with NotFound before the
// first message. A client that goes away mid-stream ends the call quietly.
func (s *grpcServer) ListUsers(req *pb.ListUsersRequest, stream pb.UserService_ListUsersServer) error {
	ctx := stream.Context()
	limit := s.defaultLimit
	if req.Limit != nil {
		limit = req.GetLimit()
	}
	log := zerolog.Ctx(ctx)
	log.Debug().Str("op", opListUsers).Uint32("limit", limit).Msg("listing users")

	r := relay.New[store.User](s.queueCapacity)
	err := r.Run(ctx,
		func(ctx context.Context) ([]store.User, error) { return s.store.ListUsers(ctx, limit) },
		func(u store.User) error { return stream.Send(toProto(u)) },
	)
	s.metrics.AddRelayed(r.Sent())

	switch {
	case err == nil:
		log.Debug().Str("op", opListUsers).Int("sent", r.Sent()).Msg("stream exhausted")
		return nil
	case errors.Is(err, relay.ErrStopped):
		log.Debug().Err(err).Str("op", opListUsers).Int("sent", r.Sent()).Msg("consumer stopped")
		return nil
	default:
		return fail(ctx, opListUsers, err)
	}
}

// CreateUser validates the mail shape and id, then inserts the user.
func (s *grpcServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*emptypb.Empty, error) {
	if err := s.mail.Check(req.GetMail()); err != nil {
		return nil, fail(ctx, opCreateUser, err)
	}
	id, err := requireID(req.GetId())
	if err != nil {
		return nil, fail(ctx, opCreateUser, err)
	}
	zerolog.Ctx(ctx).Debug().Str("op", opCreateUser).Str("id", id).Msg("creating user")

	in := store.CreateInput{ID: id, Name: req.GetName(), Mail: req.GetMail()}
	if err := s.store.CreateUser(ctx, in); err != nil {
		return nil, fail(ctx, opCreateUser, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *grpcServer) UpdateUserName(ctx context.Context, req *pb.UpdateUserNameRequest) (*emptypb.Empty, error) {
	return s.updateUser(ctx, opUpdateUserName, req.GetId(), store.NewUpdate().WithName(req.GetName()))
}

func (s *grpcServer) UpdateUserMail(ctx context.Context, req *pb.UpdateUserMailRequest) (*emptypb.Empty, error) {
	if err := s.mail.Check(req.GetMail()); err != nil {
		return nil, fail(ctx, opUpdateUserMail, err)
	}
	return s.updateUser(ctx, opUpdateUserMail, req.GetId(), store.NewUpdate().WithMail(req.GetMail()))
}

// updateUser is the shared path of the single-field updates.
func (s *grpcServer) updateUser(ctx context.Context, op string, pid *pb.UserId, b *store.UpdateBuilder) (*emptypb.Empty, error) {
	id, err := requireID(pid)
	if err != nil {
		return nil, fail(ctx, op, err)
	}
	upd, err := b.Finalize()
	if err != nil {
		return nil, fail(ctx, op, err)
	}
	zerolog.Ctx(ctx).Debug().Str("op", op).Str("id", id).Str("set", upd.Clause()).Msg("updating user")

	if err := s.store.UpdateUser(ctx, id, upd); err != nil {
		return nil, fail(ctx, op, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *grpcServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*emptypb.Empty, error) {
	id, err := requireID(req.GetId())
	if err != nil {
		return nil, fail(ctx, opDeleteUser, err)
	}
	zerolog.Ctx(ctx).Debug().Str("op", opDeleteUser).Str("id", id).Msg("deleting user")

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return nil, fail(ctx, opDeleteUser, err)
	}
	return &emptypb.Empty{}, nil
}

// ResetStore drops and recreates the users table.
func (s *grpcServer) ResetStore(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	zerolog.Ctx(ctx).Info().Str("op", opResetStore).Str("peer", peerAddr(ctx)).Msg("resetting store")
	if err := s.store.Reset(ctx); err != nil {
		return nil, fail(ctx, opResetStore, err)
	}
	return &emptypb.Empty{}, nil
}

// requireID rejects a missing id envelope and an empty id.
func requireID(id *pb.UserId) (string, error) {
	if id == nil {
		return "", apperr.New(apperr.InvalidId, "invalid id")
	}
	if err := validate.ID(id.GetId()); err != nil {
		return "", err
	}
	return id.GetId(), nil
}

// fail logs err under op and converts it to a gRPC status.
func fail(ctx context.Context, op string, err error) error {
	zerolog.Ctx(ctx).Debug().Err(err).
		Str("op", op).
		Stringer("kind", apperr.KindOf(err)).
		Msg("request failed")
	return apperr.ToStatus(err)
}

func toProto(u store.User) *pb.User {
	return &pb.User{Id: &pb.UserId{Id: u.ID}, Name: u.Name, Mail: u.Mail}
}
