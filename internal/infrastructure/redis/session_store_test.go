package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

func setupSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := NewClient(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func TestSessionStore_SaveGet(t *testing.T) {
	s, mr := setupSessionStore(t)
	ctx := context.Background()
	sess := &entity.Session{
		ID:        "s1",
		User:      entity.User{ID: "u1", Username: "john", Name: "John", Role: entity.RoleUser, Status: entity.StatusActive, PasswordHash: "secreto"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, s.Save(ctx, sess, time.Hour))
	assert.True(t, mr.Exists("session:s1"))
	assert.NotContains(t, mustGet(t, mr, "session:s1"), "secreto")

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, entity.RoleUser, got.User.Role)
	assert.Empty(t, got.User.PasswordHash)
}

func TestSessionStore_TTL(t *testing.T) {
	s, mr := setupSessionStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &entity.Session{ID: "s1"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_DeleteIdempotente(t *testing.T) {
	s, _ := setupSessionStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &entity.Session{ID: "s1"}, time.Minute))
	require.NoError(t, s.Delete(ctx, "s1"))
	require.NoError(t, s.Delete(ctx, "s1"))

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_ServidorCaido(t *testing.T) {
	s, mr := setupSessionStore(t)
	mr.Close()

	_, err := s.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}
