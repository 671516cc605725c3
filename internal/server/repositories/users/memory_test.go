package users

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/groovestream/users/internal/common"
	"github.com/groovestream/users/internal/server/models"
)

func TestMemoryCreateAndLookup(t *testing.T) {
	t.Parallel()

	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "Ava", Email: "ava@x.com", PasswordHash: "d", Role: "user"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatalf("store must assign id and created_at: %+v", u)
	}

	byEmail, err := r.GetByEmail(ctx, "ava@x.com")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("GetByEmail: %+v %v", byEmail, err)
	}

	byID, err := r.GetByID(ctx, u.ID)
	if err != nil || byID.Email != "ava@x.com" {
		t.Fatalf("GetByID: %+v %v", byID, err)
	}
}

func TestMemoryCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	r := NewMemoryRepository()
	ctx := context.Background()

	if _, err := r.Create(ctx, &models.User{Name: "Ava", Email: "ava@x.com"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	_, err := r.Create(ctx, &models.User{Name: "Bo", Email: "ava@x.com"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestMemoryLookup_NotFound(t *testing.T) {
	t.Parallel()

	r := NewMemoryRepository()
	ctx := context.Background()

	if _, err := r.GetByEmail(ctx, "nobody@x.com"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if _, err := r.GetByID(ctx, "nope"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestMemoryCreate_ConcurrentSameEmail(t *testing.T) {
	t.Parallel()

	r := NewMemoryRepository()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create(ctx, &models.User{Name: "Ava", Email: "ava@x.com"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, common.ErrorAlreadyExists):
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || dup != workers-1 {
		t.Fatalf("exactly one registration must win: ok=%d dup=%d", ok, dup)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	t.Parallel()

	r := NewMemoryRepository()
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{Name: "Ava", Email: "ava@x.com"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	u.Name = "mutated"
	again, err := r.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if again.Name != "Ava" {
		t.Fatalf("repository must not share state with callers: %+v", again)
	}
}
