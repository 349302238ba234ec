package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/application/auth"
	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

// AdminUseCase ciclo de vida de cuentas desde la consola de administración.
// Toda mutación deja una entrada en la bitácora; si la bitácora falla se revierte la mutación.
type AdminUseCase struct {
	users repository.UserRepository
	tx    repository.TxRunner
	audit *AuditUseCase
	log   *logger.Logger
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(users repository.UserRepository, tx repository.TxRunner, audit *AuditUseCase, log *logger.Logger) *AdminUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AdminUseCase{users: users, tx: tx, audit: audit, log: log}
}

// ListUsers devuelve las cuentas en orden de inserción con la proyección de la consola.
func (uc *AdminUseCase) ListUsers(ctx context.Context, admin *entity.User) ([]dto.AdminUserResponse, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toAdminUserResponse(u))
	}
	return out, nil
}

// SetStatus activa o deshabilita una cuenta. Las cuentas ADMIN no se tocan.
func (uc *AdminUseCase) SetStatus(ctx context.Context, admin *entity.User, userID, status string) (*dto.AdminUserResponse, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	if status != entity.StatusActive && status != entity.StatusDisabled {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return uc.applyStatus(ctx, admin, u, status)
}

// ToggleStatus alterna ACTIVE y DISABLED.
func (uc *AdminUseCase) ToggleStatus(ctx context.Context, admin *entity.User, userID string) (*dto.AdminUserResponse, error) {
	if err := requireAdmin(admin); err != nil {
		return nil, err
	}
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	next := entity.StatusDisabled
	if u.IsDisabled() {
		next = entity.StatusActive
	}
	return uc.applyStatus(ctx, admin, u, next)
}

func (uc *AdminUseCase) applyStatus(ctx context.Context, admin, u *entity.User, status string) (*dto.AdminUserResponse, error) {
	if u.Role == entity.RoleAdmin {
		return nil, domain.ErrForbiddenTarget
	}
	prev := u.Status
	if prev == "" {
		prev = entity.StatusActive
	}
	u.Status = status
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}

	action := entity.AuditUserUnbanned
	if status == entity.StatusDisabled {
		action = entity.AuditUserBanned
	}
	details := fmt.Sprintf("Admin changed status from %s to %s", prev, status)
	if err := uc.audit.Record(ctx, action, admin.Name, displayName(u), details); err != nil {
		u.Status = prev
		if cerr := uc.users.Update(ctx, u); cerr != nil {
			uc.log.Error().Err(cerr).Str("user_id", u.ID).Msg("no se pudo revertir el estado tras fallo de auditoría")
		}
		return nil, err
	}
	resp := toAdminUserResponse(u)
	return &resp, nil
}

// DeleteUser elimina la cuenta. Un id inexistente no hace nada y no se audita.
// Borrado y auditoría van en la misma transacción: si la bitácora falla la cuenta
// queda intacta y en su posición original.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, admin *entity.User, userID string) error {
	if err := requireAdmin(admin); err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(repos repository.Repositories) error {
		u, err := repos.Users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return nil
		}
		if u.Role == entity.RoleAdmin {
			return domain.ErrForbiddenTarget
		}
		deleted, err := repos.Users.Delete(ctx, userID)
		if err != nil || !deleted {
			return err
		}
		return uc.audit.RecordInTx(ctx, repos.AuditLogs, entity.AuditUserDeleted, admin.Name, displayName(u), "User account permanently deleted by admin")
	})
}

func requireAdmin(u *entity.User) error {
	if u == nil || u.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

func displayName(u *entity.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func toAdminUserResponse(u *entity.User) dto.AdminUserResponse {
	avatar := u.Avatar
	if avatar == "" {
		avatar = auth.DefaultAvatar(u.ID)
	}
	status := u.Status
	if status == "" {
		status = entity.StatusActive
	}
	return dto.AdminUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Identifier(),
		Role:      u.Role,
		Status:    status,
		Avatar:    avatar,
		CreatedAt: u.CreatedAt,
	}
}
