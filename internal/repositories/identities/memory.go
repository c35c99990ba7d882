package identities

import (
	"context"
	"crypto/subtle"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps identities in registration order and credentials
// keyed by identity id.
type MemoryRepository struct {
	mu          sync.RWMutex
	identities  []*models.Identity
	credentials []models.Credential
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.insert(identity)
	if err != nil {
		return nil, err
	}
	out := *stored
	return &out, nil
}

func (r *MemoryRepository) CreateWithCredential(ctx context.Context, identity *models.Identity, password string) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.insert(identity)
	if err != nil {
		return nil, err
	}
	r.credentials = append(r.credentials, models.Credential{
		Email:      stored.Email,
		Password:   password,
		IdentityID: stored.ID,
	})
	out := *stored
	return &out, nil
}

// insert must be called with mu held.
func (r *MemoryRepository) insert(identity *models.Identity) (*models.Identity, error) {
	if r.emailTaken(identity.Email, "") {
		return nil, common.ErrDuplicateEmail
	}
	stored := *identity
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if r.indexOf(stored.ID) != -1 {
		return nil, common.ErrAlreadyExists
	}
	r.identities = append(r.identities, &stored)
	return &stored, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, role models.Role, patch models.IdentityPatch, now time.Time) (*models.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 || r.identities[idx].Role != role {
		return nil, common.ErrNotFound
	}
	if patch.Email != nil && r.emailTaken(*patch.Email, id) {
		return nil, common.ErrDuplicateEmail
	}

	current := r.identities[idx]
	patch.Apply(current)
	current.UpdatedAt = now

	for i := range r.credentials {
		if r.credentials[i].IdentityID == id {
			r.credentials[i].Email = current.Email
		}
	}

	out := *current
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string, role models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 || r.identities[idx].Role != role {
		return common.ErrNotFound
	}
	r.identities = slices.Delete(r.identities, idx, idx+1)
	r.credentials = slices.DeleteFunc(r.credentials, func(c models.Credential) bool {
		return c.IdentityID == id
	})
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return nil, common.ErrNotFound
	}
	out := *r.identities[idx]
	return &out, nil
}

func (r *MemoryRepository) ListByRole(ctx context.Context, role models.Role) ([]models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Identity, 0, len(r.identities))
	for _, i := range r.identities {
		if i.Role == role {
			result = append(result, *i)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.credentials {
		if c.Email != email {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) != 1 {
			continue
		}
		idx := r.indexOf(c.IdentityID)
		if idx == -1 {
			continue
		}
		out := *r.identities[idx]
		return &out, nil
	}
	return nil, common.ErrInvalidCredentials
}

func (r *MemoryRepository) indexOf(id string) int {
	return slices.IndexFunc(r.identities, func(i *models.Identity) bool { return i.ID == id })
}

// emailTaken reports whether email belongs to an identity other than exceptID.
func (r *MemoryRepository) emailTaken(email, exceptID string) bool {
	return slices.ContainsFunc(r.identities, func(i *models.Identity) bool {
		return i.Email == email && i.ID != exceptID
	})
}
