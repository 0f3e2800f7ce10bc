package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	redis "github.com/redis/go-redis/v9"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	msgUserNotFound      = "user not found"
	msgUsersNotFound     = "users not found"
	msgUserAlreadyExists = "user already exists"
)

// duplicate-key wording used by drivers that do not expose a typed error.
var duplicateMarkers = []string{
	"duplicate key",
	"duplicate entry",
	"unique constraint failed",
}

// Classify maps a store failure onto the error taxonomy. It is total: nil
// stays nil, taxonomy errors pass through unchanged, and every other error
// becomes NotFound, AlreadyExists or StoreError.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}

	switch {
	case errors.Is(err, ErrEmptyResult):
		return apperr.Wrap(apperr.NotFound, err, msgUsersNotFound)
	case errors.Is(err, ErrRowNotFound),
		errors.Is(err, ErrNoRowsAffected),
		errors.Is(err, sql.ErrNoRows),
		errors.Is(err, pgx.ErrNoRows),
		errors.Is(err, redis.Nil):
		return apperr.Wrap(apperr.NotFound, err, msgUserNotFound)
	case isDuplicateKey(err):
		return apperr.Wrap(apperr.AlreadyExists, err, msgUserAlreadyExists)
	}
	return apperr.Wrap(apperr.StoreError, err, "store error")
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range duplicateMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
