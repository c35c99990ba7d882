package posts

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps posts newest-inserted first.
type MemoryRepository struct {
	mu    sync.RWMutex
	posts []*models.Post
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := post.Clone()
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if r.indexOf(stored.ID) != -1 {
		return nil, common.ErrAlreadyExists
	}
	stored.Tags = models.UniqueTags(stored.Tags)
	r.posts = slices.Insert(r.posts, 0, stored)
	return stored.Clone(), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, common.ErrNotFound
	}
	return r.posts[idx].Clone(), nil
}

func (r *MemoryRepository) List(ctx context.Context, query string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if Matches(p, query) {
			result = append(result, *p.Clone())
		}
	}
	slices.SortStableFunc(result, func(a, b models.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch models.PostPatch, now time.Time) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, common.ErrNotFound
	}
	patch.Apply(r.posts[idx])
	r.posts[idx].UpdatedAt = now
	return r.posts[idx].Clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return common.ErrNotFound
	}
	r.posts = slices.Delete(r.posts, idx, idx+1)
	return nil
}

func (r *MemoryRepository) AddComment(ctx context.Context, postID string, comment *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(postID)
	if idx == -1 {
		return nil, common.ErrNotFound
	}
	stored := *comment
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.posts[idx].Comments = append(r.posts[idx].Comments, stored)
	return &stored, nil
}

func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.posts, func(p *models.Post) bool { return p.ID == id })
}
