package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/edublog/internal/latency"
	"github.com/dmitrijs2005/edublog/internal/models"
)

// roleOps groups the latency ops of one role's roster operations.
type roleOps struct {
	list, create, update, remove latency.Op
}

var rosterOps = map[models.Role]roleOps{
	models.RoleTeacher: {latency.OpListTeachers, latency.OpCreateTeacher, latency.OpUpdateTeacher, latency.OpDeleteTeacher},
	models.RoleStudent: {latency.OpListStudents, latency.OpCreateStudent, latency.OpUpdateStudent, latency.OpDeleteStudent},
}

func (a *API) ListTeachers(ctx context.Context) ([]models.Identity, error) {
	return a.listRole(ctx, models.RoleTeacher)
}

// CreateTeacher registers a teacher together with a credential using the
// default password, in one step.
func (a *API) CreateTeacher(ctx context.Context, in models.IdentityInput) (*models.Identity, error) {
	return a.createRole(ctx, models.RoleTeacher, in)
}

func (a *API) UpdateTeacher(ctx context.Context, id string, patch models.IdentityPatch) (*models.Identity, error) {
	return a.updateRole(ctx, models.RoleTeacher, id, patch)
}

// DeleteTeacher removes the teacher and its credential. Posts the teacher
// wrote keep their authorId.
func (a *API) DeleteTeacher(ctx context.Context, id string) error {
	return a.deleteRole(ctx, models.RoleTeacher, id)
}

func (a *API) ListStudents(ctx context.Context) ([]models.Identity, error) {
	return a.listRole(ctx, models.RoleStudent)
}

// CreateStudent registers a student. Students get no credential.
func (a *API) CreateStudent(ctx context.Context, in models.IdentityInput) (*models.Identity, error) {
	return a.createRole(ctx, models.RoleStudent, in)
}

func (a *API) UpdateStudent(ctx context.Context, id string, patch models.IdentityPatch) (*models.Identity, error) {
	return a.updateRole(ctx, models.RoleStudent, id, patch)
}

func (a *API) DeleteStudent(ctx context.Context, id string) error {
	return a.deleteRole(ctx, models.RoleStudent, id)
}

func (a *API) listRole(ctx context.Context, role models.Role) ([]models.Identity, error) {
	var result []models.Identity
	err := a.run(ctx, rosterOps[role].list, func(ctx context.Context) error {
		var err error
		result, err = a.repos.Identities().ListByRole(ctx, role)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", role, err)
	}
	return result, nil
}

func (a *API) createRole(ctx context.Context, role models.Role, in models.IdentityInput) (*models.Identity, error) {
	var created *models.Identity
	err := a.run(ctx, rosterOps[role].create, func(ctx context.Context) error {
		if _, err := a.sessions.RequireRole(ctx, models.RoleTeacher); err != nil {
			return err
		}
		now := a.now()
		identity := &models.Identity{
			Name:      in.Name,
			Email:     in.Email,
			Username:  in.Username,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		var err error
		if role == models.RoleTeacher {
			created, err = a.repos.Identities().CreateWithCredential(ctx, identity, a.defaultPassword)
		} else {
			created, err = a.repos.Identities().Create(ctx, identity)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", role, err)
	}
	return created, nil
}

func (a *API) updateRole(ctx context.Context, role models.Role, id string, patch models.IdentityPatch) (*models.Identity, error) {
	var updated *models.Identity
	err := a.run(ctx, rosterOps[role].update, func(ctx context.Context) error {
		if _, err := a.sessions.RequireRole(ctx, models.RoleTeacher); err != nil {
			return err
		}
		var err error
		updated, err = a.repos.Identities().Update(ctx, id, role, patch, a.now())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", role, id, err)
	}
	return updated, nil
}

func (a *API) deleteRole(ctx context.Context, role models.Role, id string) error {
	err := a.run(ctx, rosterOps[role].remove, func(ctx context.Context) error {
		actor, err := a.sessions.RequireRole(ctx, models.RoleTeacher)
		if err != nil {
			return err
		}
		if err := a.repos.Identities().Delete(ctx, id, role); err != nil {
			return err
		}
		if actor.ID == id {
			a.sessions.End()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", role, id, err)
	}
	return nil
}
