package services

import (
	"context"

	"github.com/dmitrijs2005/edublog/internal/latency"
	"github.com/dmitrijs2005/edublog/internal/models"
)

// Login replaces the active session on success. Email and password are
// compared exactly.
func (a *API) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var sess *models.Session
	err := a.run(ctx, latency.OpLogin, func(ctx context.Context) error {
		var err error
		sess, err = a.sessions.Authenticate(ctx, email, password)
		return err
	})
	if err != nil {
		return nil, err
	}
	a.log.Info(ctx, "logged in", "identity_id", sess.Identity.ID, "role", sess.Identity.Role)
	return sess, nil
}

// Logout ends the session. It succeeds without a session too.
func (a *API) Logout(ctx context.Context) error {
	return a.run(ctx, latency.OpLogout, func(ctx context.Context) error {
		a.sessions.End()
		return nil
	})
}

// CurrentIdentity returns the logged-in identity or nil. It does not
// suspend.
func (a *API) CurrentIdentity(ctx context.Context) *models.Identity {
	return a.sessions.Current(ctx)
}
