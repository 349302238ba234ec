package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
)

const (
	sqlGetDocument = `SELECT version, data FROM documents WHERE collection = $1 AND id = $2`

	sqlListDocuments = `SELECT id, version, data FROM documents WHERE collection = $1 ORDER BY seq`

	sqlUpsertDocument = `
		INSERT INTO documents (collection, id, version, data) VALUES ($1, $2, 1, $3)
		ON CONFLICT (collection, id) DO UPDATE
		SET version = documents.version + 1, data = EXCLUDED.data, updated_at = now()
		RETURNING version`

	sqlInsertDocument = `
		INSERT INTO documents (collection, id, version, data) VALUES ($1, $2, 1, $3)
		ON CONFLICT (collection, id) DO NOTHING
		RETURNING version`

	sqlUpdateDocument = `
		UPDATE documents SET version = version + 1, data = $3, updated_at = now()
		WHERE collection = $1 AND id = $2 AND version = $4
		RETURNING version`

	sqlDeleteDocument = `DELETE FROM documents WHERE collection = $1 AND id = $2`

	sqlCountDocuments = `SELECT COUNT(*) FROM documents WHERE collection = $1`

	sqlSumField = `
		SELECT COUNT(*), COALESCE(SUM((data->>$4)::numeric), 0)
		FROM documents WHERE collection = $1 AND data->>$2 = $3`
)

var (
	_ store.DocumentStore = (*DocumentStore)(nil)
	_ store.FieldSummer   = (*DocumentStore)(nil)
)

// DocumentStore implementación de store.DocumentStore sobre la tabla documents (usable con pool o tx).
type DocumentStore struct {
	q Querier
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// unavailable marca los fallos del motor como almacenamiento no disponible.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}

// Get devuelve (nil, nil) si el documento no existe.
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	var (
		version int64
		data    []byte
	)
	err := s.q.QueryRow(ctx, sqlGetDocument, collection, id).Scan(&version, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, unavailable("get document", err)
	}
	return &store.Document{ID: id, Version: version, Data: data}, nil
}

// List devuelve los documentos de la colección en orden de inserción.
func (s *DocumentStore) List(ctx context.Context, collection string) ([]store.Document, error) {
	rows, err := s.q.Query(ctx, sqlListDocuments, collection)
	if err != nil {
		return nil, unavailable("list documents", err)
	}
	defer rows.Close()

	var out []store.Document
	for rows.Next() {
		var d store.Document
		var data []byte
		if err := rows.Scan(&d.ID, &d.Version, &data); err != nil {
			return nil, unavailable("scan document", err)
		}
		d.Data = data
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list documents", err)
	}
	return out, nil
}

// Put escribe el documento aplicando la comparación de versión.
func (s *DocumentStore) Put(ctx context.Context, collection string, doc store.Document) (int64, error) {
	var (
		row pgx.Row
		op  string
	)
	switch {
	case doc.Version == store.AnyVersion:
		op = "upsert document"
		row = s.q.QueryRow(ctx, sqlUpsertDocument, collection, doc.ID, []byte(doc.Data))
	case doc.Version == 0:
		op = "insert document"
		row = s.q.QueryRow(ctx, sqlInsertDocument, collection, doc.ID, []byte(doc.Data))
	default:
		op = "update document"
		row = s.q.QueryRow(ctx, sqlUpdateDocument, collection, doc.ID, []byte(doc.Data), doc.Version)
	}
	var version int64
	if err := row.Scan(&version); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, store.ErrVersionConflict
		}
		if isUniqueViolation(err) {
			return 0, store.ErrVersionConflict
		}
		return 0, unavailable(op, err)
	}
	return version, nil
}

// Delete devuelve false si el documento no existía.
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	tag, err := s.q.Exec(ctx, sqlDeleteDocument, collection, id)
	if err != nil {
		return false, unavailable("delete document", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *DocumentStore) Count(ctx context.Context, collection string) (int, error) {
	var n int
	if err := s.q.QueryRow(ctx, sqlCountDocuments, collection).Scan(&n); err != nil {
		return 0, unavailable("count documents", err)
	}
	return n, nil
}

// SumField cuenta los documentos con data->>matchField = matchValue y suma data->>sumField como NUMERIC.
func (s *DocumentStore) SumField(ctx context.Context, collection, matchField, matchValue, sumField string) (int64, decimal.Decimal, error) {
	var (
		count int64
		total decimal.Decimal
	)
	err := s.q.QueryRow(ctx, sqlSumField, collection, matchField, matchValue, sumField).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, unavailable("sum field", err)
	}
	return count, total, nil
}

// RunInTx inicia una transacción, ejecuta fn con un DocumentStore atado a la tx y hace Commit o Rollback.
func (s *DocumentStore) RunInTx(ctx context.Context, fn func(tx store.DocumentStore) error) error {
	tx, err := s.q.Begin(ctx)
	if err != nil {
		return unavailable("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewDocumentStore(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return unavailable("commit transaction", err)
	}
	return nil
}
