package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
)

func (a *App) listRole(ctx context.Context, role models.Role) ([]models.Identity, error) {
	if role == models.RoleTeacher {
		return a.api.ListTeachers(ctx)
	}
	return a.api.ListStudents(ctx)
}

// Roster prints all identities of role in registration order.
func (a *App) Roster(ctx context.Context, role models.Role) error {
	people, err := a.listRole(ctx, role)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Fprintf(a.out, "No %ss\n", role)
		return nil
	}
	for _, p := range people {
		fmt.Fprintf(a.out, "[%s] %s <%s> @%s\n", p.ID, p.Name, p.Email, p.Username)
	}
	return nil
}

func (a *App) AddMember(ctx context.Context, role models.Role) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	if err := validateMember(name, email, username); err != nil {
		return err
	}

	in := models.IdentityInput{Name: name, Email: email, Username: username}
	var created *models.Identity
	if role == models.RoleTeacher {
		created, err = a.api.CreateTeacher(ctx, in)
	} else {
		created, err = a.api.CreateStudent(ctx, in)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s %s\n", role, created.ID)
	return nil
}

// EditMember prompts for each field of identity id, keeping the current
// value on an empty answer.
func (a *App) EditMember(ctx context.Context, role models.Role, id string) error {
	people, err := a.listRole(ctx, role)
	if err != nil {
		return err
	}
	var cur *models.Identity
	for i := range people {
		if people[i].ID == id {
			cur = &people[i]
			break
		}
	}
	if cur == nil {
		return fmt.Errorf("%s %s: %w", role, id, common.ErrNotFound)
	}

	var patch models.IdentityPatch

	name, changed, err := getOptionalText(a.reader, "Name", cur.Name, a.out)
	if err != nil {
		return err
	}
	if changed {
		patch.Name = &name
	}
	email, changed, err := getOptionalText(a.reader, "Email", cur.Email, a.out)
	if err != nil {
		return err
	}
	if changed {
		patch.Email = &email
	}
	username, changed, err := getOptionalText(a.reader, "Username", cur.Username, a.out)
	if err != nil {
		return err
	}
	if changed {
		patch.Username = &username
	}

	if err := validateMember(name, email, username); err != nil {
		return err
	}

	var updated *models.Identity
	if role == models.RoleTeacher {
		updated, err = a.api.UpdateTeacher(ctx, id, patch)
	} else {
		updated, err = a.api.UpdateStudent(ctx, id, patch)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %s %s\n", role, updated.ID)
	return nil
}

func (a *App) RemoveMember(ctx context.Context, role models.Role, id string) error {
	var err error
	if role == models.RoleTeacher {
		err = a.api.DeleteTeacher(ctx, id)
	} else {
		err = a.api.DeleteStudent(ctx, id)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Removed %s %s\n", role, id)
	return nil
}
