package repository

import (
	"context"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

// AuditLogRepository bitácora append-only.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entity.AuditLogEntry) error
	// List devuelve las entradas en orden de inserción.
	List(ctx context.Context) ([]*entity.AuditLogEntry, error)
	Count(ctx context.Context) (int, error)
}
