// Package common defines shared constants and sentinel errors used across
// the EduBlog layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Login errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Permission errors: no session, or the acting role may not do this.
	ErrUnauthorized = errors.New("unauthorized")

	// Repository-level errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already in use")
	ErrAlreadyExists  = errors.New("already exists")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
