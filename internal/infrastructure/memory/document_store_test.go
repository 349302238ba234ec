package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(id, data string, version int64) store.Document {
	return store.Document{ID: id, Version: version, Data: json.RawMessage(data)}
}

func TestDocumentStore_PutGetList(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore()

	v, err := s.Put(ctx, "users", doc("b", `{"n":1}`, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
	_, err = s.Put(ctx, "users", doc("a", `{"n":2}`, 0))
	require.NoError(t, err)

	got, err := s.Get(ctx, "users", "b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"n":1}`, string(got.Data))

	missing, err := s.Get(ctx, "users", "zzz")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := s.List(ctx, "users")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "orden de inserción")
	assert.Equal(t, "a", list[1].ID)
}

func TestDocumentStore_ControlDeVersion(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore()

	_, err := s.Put(ctx, "c", doc("x", `{}`, 0))
	require.NoError(t, err)

	// insert-only sobre id existente
	_, err = s.Put(ctx, "c", doc("x", `{}`, 0))
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	v, err := s.Put(ctx, "c", doc("x", `{"v":2}`, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	// versión obsoleta
	_, err = s.Put(ctx, "c", doc("x", `{"v":3}`, 1))
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	// versión > 0 sobre id ausente
	_, err = s.Put(ctx, "c", doc("y", `{}`, 4))
	assert.ErrorIs(t, err, store.ErrVersionConflict)

	v, err = s.Put(ctx, "c", doc("x", `{"v":4}`, store.AnyVersion))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestDocumentStore_DeleteYCount(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore()
	for _, id := range []string{"a", "b", "c"} {
		_, err := s.Put(ctx, "c", doc(id, `{}`, 0))
		require.NoError(t, err)
	}

	ok, err := s.Delete(ctx, "c", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(ctx, "c", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Count(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := s.List(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
}

func TestDocumentStore_RunInTx_RollbackEnError(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore()
	_, err := s.Put(ctx, "c", doc("keep", `{}`, 0))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.RunInTx(ctx, func(tx store.DocumentStore) error {
		if _, err := tx.Put(ctx, "c", doc("new", `{}`, 0)); err != nil {
			return err
		}
		if _, err := tx.Delete(ctx, "c", "keep"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := s.Count(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got, err := s.Get(ctx, "c", "keep")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestDocumentStore_RunInTx_Commit(t *testing.T) {
	ctx := context.Background()
	s := NewDocumentStore()

	err := s.RunInTx(ctx, func(tx store.DocumentStore) error {
		_, err := tx.Put(ctx, "c", doc("a", `{}`, 0))
		return err
	})
	require.NoError(t, err)

	n, err := s.Count(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDocumentStore_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewDocumentStore()

	_, err := s.Get(ctx, "c", "a")
	assert.ErrorIs(t, err, context.Canceled)
}
