package store

import (
	"context"
	"errors"
	"fmt"
)

// User is a stored user row. The id is assigned by the caller.
type User struct {
	ID   string `db:"id" redis:"id"`
	Name string `db:"name" redis:"name"`
	Mail string `db:"mail" redis:"mail"`
}

// CreateInput is the write payload for CreateUser. All fields are required.
type CreateInput struct {
	ID   string
	Name string
	Mail string
}

// UserStore defines an interface for persisting and retrieving users.
//
// Implementations may use different backends (Postgres, MySQL, SQLite,
// Redis, or in‑memory for tests). The gRPC service depends on this
// abstraction rather than a concrete data store.
//
// All methods accept a context for cancellation and deadlines. Every
// returned error is an *apperr.Error produced by Classify, so callers never
// see a driver error directly. Each call is a single logical round trip.
type UserStore interface {
	// CreateUser inserts a new row. It fails with AlreadyExists when the id
	// is taken.
	CreateUser(ctx context.Context, in CreateInput) error
	// GetUser returns the user identified by id, or NotFound.
	GetUser(ctx context.Context, id string) (User, error)
	// ListUsers returns at most limit users in insertion order. An empty
	// result is reported as NotFound.
	ListUsers(ctx context.Context, limit uint32) ([]User, error)
	// UpdateUser applies the columns named by upd to the row identified by
	// id. It fails with NotFound when no row matched.
	UpdateUser(ctx context.Context, id string, upd PartialUpdate) error
	// DeleteUser removes the row identified by id, or fails with NotFound.
	DeleteUser(ctx context.Context, id string) error
	// Reset drops and recreates the users table.
	Reset(ctx context.Context) error
	// Close releases the connection pool.
	Close() error
}

var (
	// ErrRowNotFound signals that a single-row fetch matched nothing.
	ErrRowNotFound = errors.New("row not found")
	// ErrNoRowsAffected signals that an update or delete matched no row.
	ErrNoRowsAffected = errors.New("no rows affected")
	// ErrEmptyResult signals that a read-many query returned nothing.
	ErrEmptyResult = errors.New("empty result set")
)

// duplicateKeyError is what the non-SQL backends report for a taken id;
// Classify recognizes its wording like any driver's duplicate-key message.
func duplicateKeyError(id string) error {
	return fmt.Errorf("duplicate key %q", id)
}
