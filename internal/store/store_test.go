package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/apperr"
	"github.com/afoley587/coding-challenges-2025/grpc-user-service/internal/store"
)

func isNotFound(err error) bool { return apperr.Is(err, apperr.NotFound) }

// runStoreSuite exercises the UserStore contract against a fresh store
// returned by newStore for each subtest.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) store.UserStore) {
	t.Helper()
	ctx := context.Background()

	seed := func(t *testing.T, s store.UserStore) {
		t.Helper()
		for _, in := range []store.CreateInput{
			{ID: "12", Name: "Fede", Mail: "fede@test.com"},
			{ID: "23", Name: "Abel", Mail: "abel@test.com"},
		} {
			if err := s.CreateUser(ctx, in); err != nil {
				t.Fatalf("CreateUser(%s) returned error: %v", in.ID, err)
			}
		}
	}

	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)

		got, err := s.GetUser(ctx, "12")
		if err != nil {
			t.Fatalf("GetUser returned error: %v", err)
		}
		want := store.User{ID: "12", Name: "Fede", Mail: "fede@test.com"}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.GetUser(ctx, "nope"); !isNotFound(err) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		err := s.CreateUser(ctx, store.CreateInput{ID: "12", Name: "Other", Mail: "other@test.com"})
		if !apperr.Is(err, apperr.AlreadyExists) {
			t.Fatalf("expected AlreadyExists, got %v", err)
		}
		got, err := s.GetUser(ctx, "12")
		if err != nil || got.Name != "Fede" {
			t.Fatalf("original row changed: %+v, %v", got, err)
		}
	})

	t.Run("list order and limit", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		if err := s.CreateUser(ctx, store.CreateInput{ID: "05", Name: "Ana", Mail: "ana@test.com"}); err != nil {
			t.Fatalf("CreateUser returned error: %v", err)
		}

		users, err := s.ListUsers(ctx, 10)
		if err != nil {
			t.Fatalf("ListUsers returned error: %v", err)
		}
		ids := make([]string, len(users))
		for i, u := range users {
			ids[i] = u.ID
		}
		if fmt.Sprint(ids) != "[12 23 05]" {
			t.Fatalf("expected insertion order [12 23 05], got %v", ids)
		}

		users, err = s.ListUsers(ctx, 2)
		if err != nil {
			t.Fatalf("ListUsers(2) returned error: %v", err)
		}
		if len(users) != 2 || users[0].ID != "12" || users[1].ID != "23" {
			t.Fatalf("expected first two users, got %+v", users)
		}
	})

	t.Run("list empty", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.ListUsers(ctx, 10); !isNotFound(err) {
			t.Fatalf("expected NotFound for empty store, got %v", err)
		}
	})

	t.Run("update single field", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		upd, err := store.NewUpdate().WithMail("fede2@test.com").Finalize()
		if err != nil {
			t.Fatalf("Finalize returned error: %v", err)
		}
		if err := s.UpdateUser(ctx, "12", upd); err != nil {
			t.Fatalf("UpdateUser returned error: %v", err)
		}
		got, err := s.GetUser(ctx, "12")
		if err != nil {
			t.Fatalf("GetUser returned error: %v", err)
		}
		want := store.User{ID: "12", Name: "Fede", Mail: "fede2@test.com"}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("update all fields", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		upd, err := store.NewUpdate().WithID("99").WithName("Fred").WithMail("fred@test.com").Finalize()
		if err != nil {
			t.Fatalf("Finalize returned error: %v", err)
		}
		if err := s.UpdateUser(ctx, "12", upd); err != nil {
			t.Fatalf("UpdateUser returned error: %v", err)
		}
		if _, err := s.GetUser(ctx, "12"); !isNotFound(err) {
			t.Fatalf("expected old id to be gone, got %v", err)
		}
		got, err := s.GetUser(ctx, "99")
		if err != nil {
			t.Fatalf("GetUser returned error: %v", err)
		}
		if got != (store.User{ID: "99", Name: "Fred", Mail: "fred@test.com"}) {
			t.Fatalf("unexpected user after rename: %+v", got)
		}
		users, err := s.ListUsers(ctx, 10)
		if err != nil {
			t.Fatalf("ListUsers returned error: %v", err)
		}
		if users[0].ID != "99" {
			t.Fatalf("expected renamed user to keep its position, got %+v", users)
		}
	})

	t.Run("update id collision", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		upd, _ := store.NewUpdate().WithID("23").Finalize()
		if err := s.UpdateUser(ctx, "12", upd); !apperr.Is(err, apperr.AlreadyExists) {
			t.Fatalf("expected AlreadyExists, got %v", err)
		}
	})

	t.Run("update missing", func(t *testing.T) {
		s := newStore(t)
		upd, _ := store.NewUpdate().WithName("X").Finalize()
		if err := s.UpdateUser(ctx, "missing", upd); !isNotFound(err) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("update without fields", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		if err := s.UpdateUser(ctx, "12", store.PartialUpdate{}); !apperr.Is(err, apperr.UpdateSchemeError) {
			t.Fatalf("expected UpdateSchemeError, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		if err := s.DeleteUser(ctx, "12"); err != nil {
			t.Fatalf("DeleteUser returned error: %v", err)
		}
		if _, err := s.GetUser(ctx, "12"); !isNotFound(err) {
			t.Fatalf("expected NotFound after delete, got %v", err)
		}
		if err := s.DeleteUser(ctx, "12"); !isNotFound(err) {
			t.Fatalf("expected NotFound on second delete, got %v", err)
		}
		users, err := s.ListUsers(ctx, 10)
		if err != nil || len(users) != 1 || users[0].ID != "23" {
			t.Fatalf("expected only 23 to remain, got %+v, %v", users, err)
		}
	})

	t.Run("reset", func(t *testing.T) {
		s := newStore(t)
		seed(t, s)
		if err := s.Reset(ctx); err != nil {
			t.Fatalf("Reset returned error: %v", err)
		}
		if _, err := s.ListUsers(ctx, 10); !isNotFound(err) {
			t.Fatalf("expected empty store after reset, got %v", err)
		}
		seed(t, s)
	})

	t.Run("concurrent creates", func(t *testing.T) {
		s := newStore(t)
		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				id := fmt.Sprintf("u%02d", i)
				errs <- s.CreateUser(ctx, store.CreateInput{ID: id, Name: id, Mail: id + "@test.com"})
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			if err != nil {
				t.Fatalf("concurrent CreateUser returned error: %v", err)
			}
		}
		users, err := s.ListUsers(ctx, 100)
		if err != nil || len(users) != 20 {
			t.Fatalf("expected 20 users, got %d (%v)", len(users), err)
		}
	})
}
