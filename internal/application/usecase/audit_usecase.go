package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/metrics"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// InitAuditEntryID id fijo de la entrada que abre la bitácora.
const InitAuditEntryID = "log-init"

// InitAuditEntry entrada de origen de la bitácora.
func InitAuditEntry(at time.Time) *entity.AuditLogEntry {
	return &entity.AuditLogEntry{
		ID:         InitAuditEntryID,
		Action:     entity.AuditSystemUpdate,
		AdminName:  "System",
		TargetUser: "N/A",
		Timestamp:  at,
		Details:    "Audit Log System Initialized",
	}
}

// AuditUseCase registro y consulta de la bitácora administrativa.
type AuditUseCase struct {
	repo repository.AuditLogRepository
	now  func() time.Time
}

// NewAuditUseCase construye el caso de uso de auditoría.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo, now: time.Now}
}

// Record agrega una entrada. Si la bitácora está vacía persiste antes la entrada de origen.
func (uc *AuditUseCase) Record(ctx context.Context, action, adminName, targetUser, details string) error {
	return uc.RecordInTx(ctx, uc.repo, action, adminName, targetUser, details)
}

// RecordInTx igual que Record pero escribe con el repo del caller (misma transacción).
func (uc *AuditUseCase) RecordInTx(ctx context.Context, repo repository.AuditLogRepository, action, adminName, targetUser, details string) error {
	if !validAuditAction(action) {
		return fmt.Errorf("acción de auditoría %q: %w", action, domain.ErrInvalidInput)
	}
	now := uc.now()

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		// Otro proceso pudo escribirla primero.
		if err := repo.Append(ctx, InitAuditEntry(now)); err != nil && !errors.Is(err, domain.ErrConflict) {
			return err
		}
	}

	entry := &entity.AuditLogEntry{
		ID:         uuid.New().String(),
		Action:     action,
		AdminName:  adminName,
		TargetUser: targetUser,
		Timestamp:  now,
		Details:    details,
	}
	if err := repo.Append(ctx, entry); err != nil {
		return err
	}
	metrics.AdminActions.WithLabelValues(action).Inc()
	return nil
}

// List devuelve la bitácora de la más reciente a la más antigua; en empates gana la
// insertada después. Sin entradas devuelve solo la entrada de origen (no persistida).
func (uc *AuditUseCase) List(ctx context.Context) ([]dto.AuditLogResponse, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []dto.AuditLogResponse{toAuditLogResponse(InitAuditEntry(uc.now()))}, nil
	}

	out := make([]dto.AuditLogResponse, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, toAuditLogResponse(entries[i]))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func validAuditAction(action string) bool {
	switch action {
	case entity.AuditUserBanned, entity.AuditUserUnbanned, entity.AuditUserDeleted, entity.AuditSystemUpdate:
		return true
	}
	return false
}

func toAuditLogResponse(e *entity.AuditLogEntry) dto.AuditLogResponse {
	return dto.AuditLogResponse{
		ID:         e.ID,
		Action:     e.Action,
		AdminName:  e.AdminName,
		TargetUser: e.TargetUser,
		Timestamp:  e.Timestamp,
		Details:    e.Details,
	}
}
