package storemanager

import (
	"context"

	"github.com/groovestream/users/internal/server/repositories/users"
)

// MemoryManager serves the in-memory repository. State lives only for the
// process lifetime.
type MemoryManager struct {
	users users.Repository
}

func NewMemoryManager() *MemoryManager {
	return &MemoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryManager) Close(_ context.Context) error {
	return nil
}
