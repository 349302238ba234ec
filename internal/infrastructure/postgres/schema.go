package postgres

import (
	"context"
	"fmt"
)

// schemaSQL tabla única de documentos JSON por colección. seq conserva el orden de inserción.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	version    BIGINT      NOT NULL DEFAULT 1,
	data       JSONB       NOT NULL,
	seq        BIGSERIAL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_seq_idx ON documents (collection, seq);
CREATE INDEX IF NOT EXISTS documents_orders_business_idx ON documents ((data->>'businessId')) WHERE collection = 'orders';`

// EnsureSchema crea la tabla de documentos si no existe. Es idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
