package session

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/dmitrijs2005/edublog/internal/repositories/identities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func setup(t *testing.T, opts ...Option) (*Store, *identities.MemoryRepository) {
	t.Helper()
	repo := identities.NewMemoryRepository()
	_, err := repo.CreateWithCredential(ctx, &models.Identity{
		ID: "1", Name: "Prof. Carlos Silva", Email: "carlos.silva@escola.edu.br",
		Username: "carlos.silva", Role: models.RoleTeacher,
	}, "123456")
	require.NoError(t, err)
	return NewStore(repo, []byte("secret"), opts...), repo
}

func TestAuthenticate_StartsSession(t *testing.T) {
	s, _ := setup(t)
	require.Nil(t, s.Current(ctx))

	sess, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	assert.Equal(t, "1", sess.Identity.ID)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, sess.Token, s.Token())

	cur := s.Current(ctx)
	require.NotNil(t, cur)
	assert.Equal(t, models.RoleTeacher, cur.Role)
}

func TestAuthenticate_FreshTokenPerLogin(t *testing.T) {
	s, _ := setup(t)
	a, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	b, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestAuthenticate_FailureKeepsExistingSession(t *testing.T) {
	s, _ := setup(t)
	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	before := s.Token()

	_, err = s.Authenticate(ctx, "carlos.silva@escola.edu.br", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, before, s.Token())
	assert.NotNil(t, s.Current(ctx))
}

func TestEnd_Idempotent(t *testing.T) {
	s, _ := setup(t)
	s.End()

	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	s.End()
	s.End()

	assert.Nil(t, s.Current(ctx))
	assert.Empty(t, s.Token())
}

func TestCurrent_IdentityDeleted(t *testing.T) {
	s, repo := setup(t)
	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "1", models.RoleTeacher))
	assert.Nil(t, s.Current(ctx))
	assert.Empty(t, s.Token())
}

func TestCurrent_ClearsSessionEvenAfterIdentityReturns(t *testing.T) {
	s, repo := setup(t)
	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, s.Token())

	removed, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "1", models.RoleTeacher))
	require.Nil(t, s.Current(ctx))
	assert.Empty(t, s.Token())

	_, err = repo.Create(ctx, removed)
	require.NoError(t, err)
	assert.Nil(t, s.Current(ctx))
	_, err = s.Require(ctx)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestCurrent_ReflectsIdentityUpdates(t *testing.T) {
	s, repo := setup(t)
	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)

	name := "Prof. Dr. Carlos Silva"
	_, err = repo.Update(ctx, "1", models.RoleTeacher, models.IdentityPatch{Name: &name}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, name, s.Current(ctx).Name)
}

func TestCurrent_NoExpiryByDefault(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)}
	s, _ := setup(t, WithClock(clock.Now))
	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)

	clock.Advance(24 * 365 * time.Hour)
	assert.NotNil(t, s.Current(ctx))
}

func TestCurrent_ExpiresWithTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)}
	s, _ := setup(t, WithClock(clock.Now), WithTTL(time.Hour))
	_, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	require.NotNil(t, s.Current(ctx))

	clock.Advance(time.Hour)
	assert.Nil(t, s.Current(ctx))
	_, err = s.Require(ctx)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRequireRole(t *testing.T) {
	s, repo := setup(t)
	_, err := repo.CreateWithCredential(ctx, &models.Identity{
		ID: "4", Name: "Maria Santos", Email: "maria.santos@estudante.edu.br", Role: models.RoleStudent,
	}, "123456")
	require.NoError(t, err)

	_, err = s.RequireRole(ctx, models.RoleTeacher)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = s.Authenticate(ctx, "maria.santos@estudante.edu.br", "123456")
	require.NoError(t, err)
	_, err = s.RequireRole(ctx, models.RoleTeacher)
	require.ErrorIs(t, err, common.ErrUnauthorized)
	who, err := s.RequireRole(ctx, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "4", who.ID)
}

func TestNewStore_EmptySecretIsRandom(t *testing.T) {
	repo := identities.NewMemoryRepository()
	_, err := repo.CreateWithCredential(ctx, &models.Identity{
		ID: "1", Email: "carlos.silva@escola.edu.br", Role: models.RoleTeacher,
	}, "123456")
	require.NoError(t, err)

	s := NewStore(repo, nil)
	sess, err := s.Authenticate(ctx, "carlos.silva@escola.edu.br", "123456")
	require.NoError(t, err)
	require.NotNil(t, s.Current(ctx))

	_, err = ParseToken(sess.Token, nil, time.Now())
	require.Error(t, err, "token must not verify with an empty key")
}
