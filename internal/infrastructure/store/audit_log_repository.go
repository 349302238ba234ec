package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// AuditLogRepo bitácora append-only sobre la colección auditLogs.
type AuditLogRepo struct {
	logs collection[auditDoc]
}

// NewAuditLogRepo construye el repositorio de auditoría.
func NewAuditLogRepo(docs DocumentStore) *AuditLogRepo {
	return &AuditLogRepo{logs: collection[auditDoc]{docs: docs, name: CollectionAuditLogs}}
}

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// Append agrega una entrada; los ids repetidos se rechazan con domain.ErrConflict.
func (r *AuditLogRepo) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	doc := &auditDoc{
		ID:         entry.ID,
		Action:     entry.Action,
		AdminName:  entry.AdminName,
		TargetUser: entry.TargetUser,
		Timestamp:  entry.Timestamp,
		Details:    entry.Details,
	}
	if _, err := r.logs.put(ctx, entry.ID, doc, 0); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepo) List(ctx context.Context) ([]*entity.AuditLogEntry, error) {
	recs, err := r.logs.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	out := make([]*entity.AuditLogEntry, 0, len(recs))
	for _, rec := range recs {
		d := rec.value
		out = append(out, &entity.AuditLogEntry{
			ID:         d.ID,
			Action:     d.Action,
			AdminName:  d.AdminName,
			TargetUser: d.TargetUser,
			Timestamp:  d.Timestamp,
			Details:    d.Details,
		})
	}
	return out, nil
}

func (r *AuditLogRepo) Count(ctx context.Context) (int, error) {
	n, err := r.logs.count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count audit logs: %w", err)
	}
	return n, nil
}
