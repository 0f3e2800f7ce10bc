// Package apperr defines the failure kinds the user service reports and the
// mapping from each kind to a gRPC status code.
package apperr

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind categorizes a failure. Every Kind maps to exactly one gRPC code.
type Kind int

const (
	// Unknown is the zero value and covers errors that were never classified.
	Unknown Kind = iota
	InternalServer
	InvalidUri
	ConnectionError
	StoreError
	UpdateSchemeError
	InvalidEmail
	InvalidId
	InternalValidationError
	NotFound
	AlreadyExists
)

var kindNames = map[Kind]string{
	Unknown:                 "UNKNOWN",
	InternalServer:          "INTERNAL_SERVER",
	InvalidUri:              "INVALID_URI",
	ConnectionError:         "CONNECTION_ERROR",
	StoreError:              "STORE_ERROR",
	UpdateSchemeError:       "UPDATE_SCHEME_ERROR",
	InvalidEmail:            "INVALID_EMAIL",
	InvalidId:               "INVALID_ID",
	InternalValidationError: "INTERNAL_VALIDATION_ERROR",
	NotFound:                "NOT_FOUND",
	AlreadyExists:           "ALREADY_EXISTS",
}

// Kinds lists every defined Kind.
func Kinds() []Kind {
	return []Kind{
		Unknown, InternalServer, InvalidUri, ConnectionError, StoreError,
		UpdateSchemeError, InvalidEmail, InvalidId, InternalValidationError,
		NotFound, AlreadyExists,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Code returns the gRPC status code for k. Kinds without a dedicated code,
// including values outside the defined set, map to codes.Internal.
func (k Kind) Code() codes.Code {
	switch k {
	case InvalidEmail, InvalidId:
		return codes.InvalidArgument
	case NotFound:
		return codes.NotFound
	case AlreadyExists:
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// Error is a classified failure carrying a human readable message.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, if any. It is never sent to callers.
	Err error
}

// New returns an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf returns an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies cause as kind. The cause stays reachable through errors.Is/As.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// GRPCStatus lets grpc-go render an *Error returned from a handler with the
// mapped code. Only the message is exposed, never the cause.
func (e *Error) GRPCStatus() *status.Status {
	return status.New(e.Kind.Code(), e.Message)
}

// KindOf reports the Kind of err, or Unknown when err carries none.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// ToStatus converts any error into a gRPC status error. Taxonomy errors use
// their mapped code, context errors keep their canonical codes, status errors
// pass through, and everything else is reported as Unknown.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.GRPCStatus().Err()
	}
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	if s, ok := status.FromError(err); ok {
		return s.Err()
	}
	return status.Error(Unknown.Code(), err.Error())
}
