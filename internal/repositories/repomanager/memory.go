package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/edublog/internal/repositories/identities"
	"github.com/dmitrijs2005/edublog/internal/repositories/posts"
)

type MemoryRepositoryManager struct {
	step       sync.Mutex
	identities *identities.MemoryRepository
	posts      *posts.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		identities: identities.NewMemoryRepository(),
		posts:      posts.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Identities() identities.Repository {
	return m.identities
}

func (m *MemoryRepositoryManager) Posts() posts.Repository {
	return m.posts
}

// Atomic holds the step lock for the whole of fn. fn must not call Atomic.
// A panic in fn releases the lock and is rethrown.
func (m *MemoryRepositoryManager) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	m.step.Lock()
	defer m.step.Unlock()
	return fn(ctx)
}
