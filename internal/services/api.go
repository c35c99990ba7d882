// Package services contains the access-controlled mutation layer: the only
// entry point through which callers read or change EduBlog state.
//
// Every operation runs in two phases. First it suspends for the simulated
// network delay declared for it (see package latency). Then it takes one
// atomic step under the repository manager: permission check, reads and
// writes. A failed permission check or lookup is terminal for the call.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/latency"
	"github.com/dmitrijs2005/edublog/internal/logging"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/dmitrijs2005/edublog/internal/repositories/repomanager"
	"github.com/dmitrijs2005/edublog/internal/session"
)

//go:generate mockgen -destination=../mocks/mock_api.go -package=mocks github.com/dmitrijs2005/edublog/internal/services BlogAPI

// BlogAPI is the contract the UI layer talks to.
//
// Permissions:
//   - ListPosts, GetPost, ListTeachers, ListStudents: public.
//   - CreatePost, AddComment: any logged-in identity.
//   - UpdatePost, DeletePost and every teacher/student mutation: teachers.
//
// Failures match common.ErrInvalidCredentials, common.ErrUnauthorized,
// common.ErrNotFound or common.ErrDuplicateEmail with errors.Is.
//
// A context cancelled or timed out before the simulated delay ends is the
// one untyped failure: the call returns ctx.Err() unwrapped
// (context.Canceled or context.DeadlineExceeded) and state is not touched.
type BlogAPI interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	CurrentIdentity(ctx context.Context) *models.Identity

	ListPosts(ctx context.Context, query string) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID string, in models.CommentInput) (*models.Comment, error)

	ListTeachers(ctx context.Context) ([]models.Identity, error)
	CreateTeacher(ctx context.Context, in models.IdentityInput) (*models.Identity, error)
	UpdateTeacher(ctx context.Context, id string, patch models.IdentityPatch) (*models.Identity, error)
	DeleteTeacher(ctx context.Context, id string) error

	ListStudents(ctx context.Context) ([]models.Identity, error)
	CreateStudent(ctx context.Context, in models.IdentityInput) (*models.Identity, error)
	UpdateStudent(ctx context.Context, id string, patch models.IdentityPatch) (*models.Identity, error)
	DeleteStudent(ctx context.Context, id string) error
}

// API is the in-process BlogAPI backed by a RepositoryManager.
type API struct {
	repos           repomanager.RepositoryManager
	sessions        *session.Store
	latency         *latency.Simulator
	log             logging.Logger
	now             func() time.Time
	defaultPassword string
}

var _ BlogAPI = (*API)(nil)

// Option customizes an API.
type Option func(*API)

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *API) { a.now = now }
}

// WithDefaultPassword sets the password given to teachers created at
// runtime.
func WithDefaultPassword(p string) Option {
	return func(a *API) { a.defaultPassword = p }
}

// WithLogger sets the logger. The default drops everything.
func WithLogger(l logging.Logger) Option {
	return func(a *API) { a.log = l }
}

func NewAPI(repos repomanager.RepositoryManager, sessions *session.Store, sim *latency.Simulator, opts ...Option) *API {
	a := &API{
		repos:           repos,
		sessions:        sessions,
		latency:         sim,
		log:             logging.Discard(),
		now:             time.Now,
		defaultPassword: common.DefaultTeacherPassword,
	}
	for _, o := range opts {
		o(a)
	}
	a.log = a.log.With("component", "api")
	return a
}

// run suspends for op's delay and then executes step atomically. The
// outcome is logged; typed failures at warn, anything else at error.
func (a *API) run(ctx context.Context, op latency.Op, step func(ctx context.Context) error) error {
	if err := a.latency.Suspend(ctx, op); err != nil {
		a.log.Warn(ctx, "operation cancelled", "op", op, "err", err)
		return err
	}

	err := a.repos.Atomic(ctx, step)
	switch {
	case err == nil:
		a.log.Info(ctx, "operation done", "op", op)
	case isTyped(err):
		a.log.Warn(ctx, "operation refused", "op", op, "err", err)
	default:
		a.log.Error(ctx, "operation failed", "op", op, "err", err)
	}
	return err
}

func isTyped(err error) bool {
	return errors.Is(err, common.ErrInvalidCredentials) ||
		errors.Is(err, common.ErrUnauthorized) ||
		errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrDuplicateEmail)
}
