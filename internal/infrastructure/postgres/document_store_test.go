package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
)

func setupDocumentStoreTest(t *testing.T) (*DocumentStore, pgxmock.PgxPoolIface) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	return NewDocumentStore(mockPool), mockPool
}

func TestDocumentStore_Get(t *testing.T) {
	s, mockPool := setupDocumentStoreTest(t)
	defer mockPool.Close()

	t.Run("Found", func(t *testing.T) {
		rows := mockPool.NewRows([]string{"version", "data"}).AddRow(int64(3), []byte(`{"id":"u1"}`))
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlGetDocument)).WithArgs("users", "u1").WillReturnRows(rows)

		doc, err := s.Get(context.Background(), "users", "u1")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, int64(3), doc.Version)
		assert.JSONEq(t, `{"id":"u1"}`, string(doc.Data))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlGetDocument)).WithArgs("users", "nope").WillReturnError(pgx.ErrNoRows)

		doc, err := s.Get(context.Background(), "users", "nope")
		require.NoError(t, err)
		assert.Nil(t, doc)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("DBError", func(t *testing.T) {
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlGetDocument)).WithArgs("users", "u1").WillReturnError(errors.New("connection refused"))

		doc, err := s.Get(context.Background(), "users", "u1")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Nil(t, doc)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestDocumentStore_List(t *testing.T) {
	s, mockPool := setupDocumentStoreTest(t)
	defer mockPool.Close()

	rows := mockPool.NewRows([]string{"id", "version", "data"}).
		AddRow("b", int64(1), []byte(`{}`)).
		AddRow("a", int64(2), []byte(`{}`))
	mockPool.ExpectQuery(regexp.QuoteMeta(sqlListDocuments)).WithArgs("businesses").WillReturnRows(rows)

	docs, err := s.List(context.Background(), "businesses")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, int64(2), docs[1].Version)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDocumentStore_Put(t *testing.T) {
	s, mockPool := setupDocumentStoreTest(t)
	defer mockPool.Close()
	data := []byte(`{"name":"Acme"}`)

	t.Run("Upsert", func(t *testing.T) {
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlUpsertDocument)).
			WithArgs("systemSettings", "bankDetails", data).
			WillReturnRows(mockPool.NewRows([]string{"version"}).AddRow(int64(4)))

		v, err := s.Put(context.Background(), "systemSettings", store.Document{ID: "bankDetails", Version: store.AnyVersion, Data: data})
		require.NoError(t, err)
		assert.Equal(t, int64(4), v)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("InsertExistente", func(t *testing.T) {
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlInsertDocument)).
			WithArgs("users", "u1", data).
			WillReturnError(pgx.ErrNoRows)

		_, err := s.Put(context.Background(), "users", store.Document{ID: "u1", Version: 0, Data: data})
		assert.ErrorIs(t, err, store.ErrVersionConflict)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("UpdateVersionCoincide", func(t *testing.T) {
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlUpdateDocument)).
			WithArgs("businesses", "b1", data, int64(2)).
			WillReturnRows(mockPool.NewRows([]string{"version"}).AddRow(int64(3)))

		v, err := s.Put(context.Background(), "businesses", store.Document{ID: "b1", Version: 2, Data: data})
		require.NoError(t, err)
		assert.Equal(t, int64(3), v)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("UpdateVersionObsoleta", func(t *testing.T) {
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlUpdateDocument)).
			WithArgs("businesses", "b1", data, int64(1)).
			WillReturnError(pgx.ErrNoRows)

		_, err := s.Put(context.Background(), "businesses", store.Document{ID: "b1", Version: 1, Data: data})
		assert.ErrorIs(t, err, store.ErrVersionConflict)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestDocumentStore_DeleteYCount(t *testing.T) {
	s, mockPool := setupDocumentStoreTest(t)
	defer mockPool.Close()

	mockPool.ExpectExec(regexp.QuoteMeta(sqlDeleteDocument)).WithArgs("users", "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mockPool.ExpectExec(regexp.QuoteMeta(sqlDeleteDocument)).WithArgs("users", "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mockPool.ExpectQuery(regexp.QuoteMeta(sqlCountDocuments)).WithArgs("users").
		WillReturnRows(mockPool.NewRows([]string{"count"}).AddRow(2))

	ok, err := s.Delete(context.Background(), "users", "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.Delete(context.Background(), "users", "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Count(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDocumentStore_SumField(t *testing.T) {
	s, mockPool := setupDocumentStoreTest(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta(sqlSumField)).
		WithArgs("orders", "businessId", "b1", "amount").
		WillReturnRows(mockPool.NewRows([]string{"count", "sum"}).AddRow(int64(2), "398.00"))

	count, total, err := s.SumField(context.Background(), "orders", "businessId", "b1", "amount")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.True(t, decimal.NewFromInt(398).Equal(total))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDocumentStore_RunInTx(t *testing.T) {
	data := []byte(`{}`)

	t.Run("Commit", func(t *testing.T) {
		s, mockPool := setupDocumentStoreTest(t)
		defer mockPool.Close()

		mockPool.ExpectBegin()
		mockPool.ExpectQuery(regexp.QuoteMeta(sqlInsertDocument)).WithArgs("users", "u1", data).
			WillReturnRows(mockPool.NewRows([]string{"version"}).AddRow(int64(1)))
		mockPool.ExpectCommit()

		err := s.RunInTx(context.Background(), func(tx store.DocumentStore) error {
			_, err := tx.Put(context.Background(), "users", store.Document{ID: "u1", Data: data})
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Rollback", func(t *testing.T) {
		s, mockPool := setupDocumentStoreTest(t)
		defer mockPool.Close()

		mockPool.ExpectBegin()
		mockPool.ExpectRollback()

		boom := errors.New("boom")
		err := s.RunInTx(context.Background(), func(store.DocumentStore) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
