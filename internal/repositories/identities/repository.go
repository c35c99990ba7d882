// Package identities stores the Identity Directory and the Credential Table.
// Both live behind one Repository so that operations touching the two tables
// (registering a teacher, deleting anyone) happen in a single call.
package identities

import (
	"context"
	"time"

	"github.com/dmitrijs2005/edublog/internal/models"
)

type Repository interface {
	// Create inserts identity without a credential. Fails with
	// common.ErrDuplicateEmail if the email is taken by any role.
	Create(ctx context.Context, identity *models.Identity) (*models.Identity, error)
	// CreateWithCredential inserts identity and its credential together.
	CreateWithCredential(ctx context.Context, identity *models.Identity, password string) (*models.Identity, error)
	// Update merges patch over the identity with the given id and role and
	// keeps the credential email in step with the identity email.
	Update(ctx context.Context, id string, role models.Role, patch models.IdentityPatch, now time.Time) (*models.Identity, error)
	// Delete removes the identity with the given id and role together with
	// its credential, if any.
	Delete(ctx context.Context, id string, role models.Role) error
	GetByID(ctx context.Context, id string) (*models.Identity, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.Identity, error)
	// Authenticate returns the identity whose credential matches email and
	// password exactly, or common.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
}
