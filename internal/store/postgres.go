package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
)

var postgresStatements = newStatements(Dollar, `CREATE TABLE IF NOT EXISTS users (
	seq BIGSERIAL,
	id VARCHAR(48) PRIMARY KEY NOT NULL,
	name VARCHAR(256) NOT NULL,
	mail VARCHAR(256) NOT NULL
)`, "seq")

// PostgresStore implements UserStore on a pgx connection pool. The pool is
// safe for concurrent use and is the only synchronization the store relies on.
type PostgresStore struct {
	pool *pgxpool.Pool
	st   statements
}

var _ UserStore = (*PostgresStore)(nil)

// NewPostgresStore parses dsn, opens a pool of at most maxConns connections,
// verifies connectivity and ensures the users table exists.
func NewPostgresStore(ctx context.Context, dsn string, maxConns int32) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidUri, err, "invalid postgres url")
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, apperr.Wrap(apperr.ConnectionError, err, "couldn't connect to the database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperr.Wrap(apperr.ConnectionError, err, "couldn't connect to the database")
	}
	if _, err := pool.Exec(ctx, postgresStatements.create); err != nil {
		pool.Close()
		return nil, apperr.Wrap(apperr.StoreError, err, "couldn't create the table")
	}
	return &PostgresStore{pool: pool, st: postgresStatements}, nil
}

// Pool exposes the underlying pool for tests.
func (s *PostgresStore) Pool() *pgxpool.Pool { return s.pool }

func (s *PostgresStore) CreateUser(ctx context.Context, in CreateInput) error {
	_, err := s.pool.Exec(ctx, s.st.insert, in.ID, in.Name, in.Mail)
	return Classify(err)
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (User, error) {
	rows, err := s.pool.Query(ctx, s.st.selectByID, id)
	if err != nil {
		return User{}, Classify(err)
	}
	u, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[User])
	if err != nil {
		return User{}, Classify(err)
	}
	return u, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context, limit uint32) ([]User, error) {
	rows, err := s.pool.Query(ctx, s.st.selectN, int64(limit))
	if err != nil {
		return nil, Classify(err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[User])
	if err != nil {
		return nil, Classify(err)
	}
	if len(users) == 0 {
		return nil, Classify(ErrEmptyResult)
	}
	return users, nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, id string, upd PartialUpdate) error {
	if !upd.Valid() {
		return errEmptyUpdate()
	}
	query, args := updateStatement(upd, s.st.ph, id)
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return Classify(ErrNoRowsAffected)
	}
	return nil
}

func (s *PostgresStore) DeleteUser(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, s.st.deleteByID, id)
	if err != nil {
		return Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return Classify(ErrNoRowsAffected)
	}
	return nil
}

// Reset drops and recreates the users table. Both statements travel in one
// batch, which pgx runs in an implicit transaction.
func (s *PostgresStore) Reset(ctx context.Context) error {
	batch := &pgx.Batch{}
	batch.Queue(s.st.drop)
	batch.Queue(s.st.create)
	return Classify(s.pool.SendBatch(ctx, batch).Close())
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
