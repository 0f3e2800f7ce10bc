package store

import (
	"context"
	"sync"
)

// InMemoryStore is an implementation of UserStore backed by a simple
// in‑memory map. It is safe for concurrent use and intended primarily
// for unit tests and development. Data stored in this store is not
// persisted beyond the lifetime of the process.
type InMemoryStore struct {
	mu    sync.Mutex
	users map[string]User
	// order holds ids in insertion order so ListUsers matches what the SQL
	// backends return.
	order []string
}

var _ UserStore = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in‑memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make(map[string]User),
	}
}

// CreateUser inserts a new user. It fails with AlreadyExists if the id is
// already present.
func (s *InMemoryStore) CreateUser(ctx context.Context, in CreateInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[in.ID]; ok {
		return Classify(duplicateKeyError(in.ID))
	}
	s.users[in.ID] = User{ID: in.ID, Name: in.Name, Mail: in.Mail}
	s.order = append(s.order, in.ID)
	return nil
}

// GetUser retrieves a user by id.
func (s *InMemoryStore) GetUser(ctx context.Context, id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return User{}, Classify(ErrRowNotFound)
}

// ListUsers returns up to limit users in insertion order.
func (s *InMemoryStore) ListUsers(ctx context.Context, limit uint32) ([]User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(len(s.order), int(limit))
	if n == 0 {
		return nil, Classify(ErrEmptyResult)
	}
	users := make([]User, 0, n)
	for _, id := range s.order[:n] {
		users = append(users, s.users[id])
	}
	return users, nil
}

// UpdateUser applies the fields present in upd.
func (s *InMemoryStore) UpdateUser(ctx context.Context, id string, upd PartialUpdate) error {
	if !upd.Valid() {
		return errEmptyUpdate()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return Classify(ErrNoRowsAffected)
	}
	if upd.ID != nil && *upd.ID != id {
		if _, taken := s.users[*upd.ID]; taken {
			return Classify(duplicateKeyError(*upd.ID))
		}
		delete(s.users, id)
		for i, cur := range s.order {
			if cur == id {
				s.order[i] = *upd.ID
				break
			}
		}
		u.ID = *upd.ID
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Mail != nil {
		u.Mail = *upd.Mail
	}
	s.users[u.ID] = u
	return nil
}

// DeleteUser removes a user by id.
func (s *InMemoryStore) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return Classify(ErrNoRowsAffected)
	}
	delete(s.users, id)
	for i, cur := range s.order {
		if cur == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Reset empties the store.
func (s *InMemoryStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]User)
	s.order = nil
	return nil
}

// Close is a no-op.
func (s *InMemoryStore) Close() error { return nil }
