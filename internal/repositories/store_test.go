package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := Open("sqlite", dsn, zerolog.Nop())
	require.NoError(t, err)
	s := NewStore(db)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustUser(t *testing.T, s *Store, email string, role models.Role) *models.User {
	t.Helper()
	u := &models.User{Username: email, Email: email, Password: "hash", Role: role}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "dsn", zerolog.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestStore_Ping(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping())
}

func TestCreateUser_AssignsID(t *testing.T) {
	s := newTestStore(t)
	u := mustUser(t, s, "alice@x.com", models.RoleStudent)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	mustUser(t, s, "alice@x.com", models.RoleStudent)

	dup := &models.User{Username: "other", Email: "alice@x.com", Password: "hash", Role: models.RoleInvestor}
	err := s.CreateUser(ctx, dup)
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFindUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustUser(t, s, "bob@x.com", models.RoleInvestor)

	byEmail, err := s.FindUserByEmail(ctx, "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, models.RoleInvestor, byEmail.Role)

	byID, err := s.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", byID.Email)

	_, err = s.FindUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
