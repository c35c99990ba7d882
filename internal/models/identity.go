// Package models holds the EduBlog domain records shared by repositories,
// services and the CLI.
package models

import "time"

// Role is the kind of person an Identity represents.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Identity is a registered teacher or student. Email is unique across both
// roles.
type Identity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsTeacher reports whether the identity has the teacher role.
func (i *Identity) IsTeacher() bool {
	return i != nil && i.Role == RoleTeacher
}

// Credential is a login row. IdentityID always points to an existing
// Identity and Email always equals that identity's email.
type Credential struct {
	Email      string
	Password   string
	IdentityID string
}

// IdentityInput carries the fields a teacher submits when registering a
// teacher or a student.
type IdentityInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// IdentityPatch is merged over an existing Identity; nil fields are kept.
type IdentityPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
}

// Apply merges p into i. It never touches ID, Role or CreatedAt.
func (p IdentityPatch) Apply(i *Identity) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Email != nil {
		i.Email = *p.Email
	}
	if p.Username != nil {
		i.Username = *p.Username
	}
}
