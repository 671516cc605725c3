package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/groovestream/users/internal/common"
	"github.com/groovestream/users/internal/server/models"
)

// MemoryRepository is a mutex-guarded in-memory store used by tests and
// "memory:" runs. Email uniqueness is enforced under the same lock as the
// insert, matching the atomicity the SQL unique index provides.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	if stored.Playlist == nil {
		stored.Playlist = []string{}
	}

	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r.byID[id]
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *user
	return &out, nil
}

var (
	_ Repository = (*MemoryRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
	_ Repository = (*MongoRepository)(nil)
)
