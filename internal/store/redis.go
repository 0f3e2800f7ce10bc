package store

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
)

const (
	userKeyPrefix = "user:"
	indexKey      = "users:index"
	seqKey        = "users:seq"
)

// RedisStore is an implementation of UserStore backed by Redis. Each user
// is a hash at "user:<id>"; the sorted set "users:index" scores ids by a
// monotonic counter so listing follows insertion order. Multi-key writes
// run as Lua scripts so every operation is atomic and a single round trip.
//
// The scripts touch keys derived from ids that are not declared in KEYS,
// so the store targets a single Redis node rather than a cluster.
type RedisStore struct {
	client *redis.Client
}

var _ UserStore = (*RedisStore)(nil)

var createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1], 'id', ARGV[1], 'name', ARGV[2], 'mail', ARGV[3])
redis.call('ZADD', KEYS[2], redis.call('INCR', KEYS[3]), ARGV[1])
return 1
`)

// updateScript returns 0 when the row is missing and -1 when the new id is
// already taken.
var updateScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 0
end
if KEYS[2] ~= KEYS[1] then
  if redis.call('EXISTS', KEYS[2]) == 1 then
    return -1
  end
  local score = redis.call('ZSCORE', KEYS[3], ARGV[1])
  redis.call('RENAME', KEYS[1], KEYS[2])
  redis.call('ZREM', KEYS[3], ARGV[1])
  redis.call('ZADD', KEYS[3], score, ARGV[2])
  redis.call('HSET', KEYS[2], 'id', ARGV[2])
end
if ARGV[3] == '1' then
  redis.call('HSET', KEYS[2], 'name', ARGV[4])
end
if ARGV[5] == '1' then
  redis.call('HSET', KEYS[2], 'mail', ARGV[6])
end
return 1
`)

var listScript = redis.NewScript(`
local ids = redis.call('ZRANGE', KEYS[1], 0, tonumber(ARGV[2]) - 1)
local out = {}
for _, id in ipairs(ids) do
  local h = redis.call('HMGET', ARGV[1] .. id, 'id', 'name', 'mail')
  if h[1] then
    out[#out + 1] = h[1]
    out[#out + 1] = h[2]
    out[#out + 1] = h[3]
  end
end
return out
`)

var resetScript = redis.NewScript(`
local ids = redis.call('ZRANGE', KEYS[1], 0, -1)
for _, id in ipairs(ids) do
  redis.call('DEL', ARGV[1] .. id)
end
redis.call('DEL', KEYS[1], KEYS[2])
return #ids
`)

// NewRedisStore connects to Redis with the provided options and verifies
// connectivity with a ping.
func NewRedisStore(ctx context.Context, opts *redis.Options) (*RedisStore, error) {
	if opts.MaintNotificationsConfig == nil {
		opts.MaintNotificationsConfig = &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperr.Wrap(apperr.ConnectionError, err, "redis ping failed")
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromURL parses a redis:// or rediss:// URL and connects with
// a pool of at most poolSize connections.
func NewRedisStoreFromURL(ctx context.Context, rawURL string, poolSize int) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidUri, err, "invalid redis url")
	}
	if poolSize > 0 {
		opts.PoolSize = poolSize
	}
	return NewRedisStore(ctx, opts)
}

func userKey(id string) string { return userKeyPrefix + id }

// CreateUser stores a new user hash and appends its id to the index.
func (s *RedisStore) CreateUser(ctx context.Context, in CreateInput) error {
	created, err := createScript.Run(ctx, s.client,
		[]string{userKey(in.ID), indexKey, seqKey}, in.ID, in.Name, in.Mail).Int()
	if err != nil {
		return Classify(fmt.Errorf("redis create: %w", err))
	}
	if created == 0 {
		return Classify(duplicateKeyError(in.ID))
	}
	return nil
}

// GetUser reads the user hash for id.
func (s *RedisStore) GetUser(ctx context.Context, id string) (User, error) {
	res := s.client.HGetAll(ctx, userKey(id))
	fields, err := res.Result()
	if err != nil {
		return User{}, Classify(fmt.Errorf("redis hgetall: %w", err))
	}
	if len(fields) == 0 {
		return User{}, Classify(ErrRowNotFound)
	}
	var u User
	if err := res.Scan(&u); err != nil {
		return User{}, Classify(fmt.Errorf("decode user %s: %w", id, err))
	}
	return u, nil
}

// ListUsers returns up to limit users in insertion order.
func (s *RedisStore) ListUsers(ctx context.Context, limit uint32) ([]User, error) {
	if limit == 0 {
		return nil, Classify(ErrEmptyResult)
	}
	flat, err := listScript.Run(ctx, s.client, []string{indexKey}, userKeyPrefix, limit).StringSlice()
	if err != nil {
		return nil, Classify(fmt.Errorf("redis list: %w", err))
	}
	if len(flat) == 0 {
		return nil, Classify(ErrEmptyResult)
	}
	users := make([]User, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		users = append(users, User{ID: flat[i], Name: flat[i+1], Mail: flat[i+2]})
	}
	return users, nil
}

// UpdateUser applies the fields present in upd. Changing the id renames the
// hash and moves it in the index without changing its position.
func (s *RedisStore) UpdateUser(ctx context.Context, id string, upd PartialUpdate) error {
	if !upd.Valid() {
		return errEmptyUpdate()
	}
	newID := id
	if upd.ID != nil {
		newID = *upd.ID
	}
	name, hasName := scriptArg(upd.Name)
	mail, hasMail := scriptArg(upd.Mail)
	res, err := updateScript.Run(ctx, s.client,
		[]string{userKey(id), userKey(newID), indexKey},
		id, newID, hasName, name, hasMail, mail).Int()
	if err != nil {
		return Classify(fmt.Errorf("redis update: %w", err))
	}
	switch res {
	case 0:
		return Classify(ErrNoRowsAffected)
	case -1:
		return Classify(duplicateKeyError(newID))
	}
	return nil
}

// DeleteUser removes the user hash and its index entry in one transaction.
func (s *RedisStore) DeleteUser(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, userKey(id))
		pipe.ZRem(ctx, indexKey, id)
		return nil
	})
	if err != nil {
		return Classify(fmt.Errorf("redis delete: %w", err))
	}
	if del.Val() == 0 {
		return Classify(ErrNoRowsAffected)
	}
	return nil
}

// Reset removes every user, the index and the sequence counter.
func (s *RedisStore) Reset(ctx context.Context) error {
	if err := resetScript.Run(ctx, s.client, []string{indexKey, seqKey}, userKeyPrefix).Err(); err != nil {
		return Classify(fmt.Errorf("redis reset: %w", err))
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }

// scriptArg splits an optional value into the value and a "0"/"1" presence
// marker for updateScript.
func scriptArg(v *string) (string, string) {
	if v == nil {
		return "", "0"
	}
	return *v, "1"
}
