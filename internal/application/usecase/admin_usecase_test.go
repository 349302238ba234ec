package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

func seedUsers(t *testing.T, repos repository.Repositories) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "user-2", Name: "John Doe", Username: "john", Email: "john.doe@example.com", Role: entity.RoleUser, Status: entity.StatusActive, CreatedAt: now}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "user-3", Name: "", Username: "alice", Role: entity.RoleUser, Status: entity.StatusDisabled, CreatedAt: now}))
	require.NoError(t, repos.Users.Create(ctx, &entity.User{ID: "admin-9", Name: "Otro Admin", Username: "root", Role: entity.RoleAdmin, Status: entity.StatusActive, CreatedAt: now}))
}

func newAdminUC(repos repository.Repositories, tx repository.TxRunner) (*AdminUseCase, *AuditUseCase) {
	audit := NewAuditUseCase(repos.AuditLogs)
	return NewAdminUseCase(repos.Users, tx, audit, nil), audit
}

// ─── Listado ─────────────────────────────────────────────────────────────────

func TestListUsers_Proyeccion(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc, _ := newAdminUC(repos, tx)

	list, err := uc.ListUsers(context.Background(), testAdmin)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "user-2", list[0].ID)
	assert.Equal(t, "john.doe@example.com", list[0].Email)
	assert.Equal(t, "alice", list[1].Email, "sin email se usa el username")
	assert.Equal(t, "https://picsum.photos/seed/user-3/100/100", list[1].Avatar)

	_, err = uc.ListUsers(context.Background(), testOwner)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─── Estado ──────────────────────────────────────────────────────────────────

func TestSetStatus_BanAuditado(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc, audit := newAdminUC(repos, tx)
	ctx := context.Background()

	resp, err := uc.SetStatus(ctx, testAdmin, "user-2", entity.StatusDisabled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDisabled, resp.Status)

	stored, err := repos.Users.GetByID(ctx, "user-2")
	require.NoError(t, err)
	assert.True(t, stored.IsDisabled())

	logs, err := audit.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditUserBanned, logs[0].Action)
	assert.Equal(t, "John Doe", logs[0].TargetUser)
	assert.Equal(t, "Super Admin", logs[0].AdminName)
	assert.Equal(t, "Admin changed status from ACTIVE to DISABLED", logs[0].Details)
}

func TestSetStatus_Errores(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc, _ := newAdminUC(repos, tx)
	ctx := context.Background()

	_, err := uc.SetStatus(ctx, testAdmin, "admin-9", entity.StatusDisabled)
	assert.ErrorIs(t, err, domain.ErrForbiddenTarget)

	_, err = uc.SetStatus(ctx, testAdmin, "no-existe", entity.StatusDisabled)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.SetStatus(ctx, testAdmin, "user-2", "BANNED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SetStatus(ctx, testOwner, "user-2", entity.StatusDisabled)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestToggleStatus_UnbanUsaNombreDeUsuario(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc, audit := newAdminUC(repos, tx)
	ctx := context.Background()

	resp, err := uc.ToggleStatus(ctx, testAdmin, "user-3")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, resp.Status)

	logs, err := audit.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.AuditUserUnbanned, logs[0].Action)
	assert.Equal(t, "alice", logs[0].TargetUser)
}

func TestSetStatus_FalloDeAuditoriaRevierte(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc := NewAdminUseCase(repos.Users, tx, NewAuditUseCase(failingAudit{}), nil)
	ctx := context.Background()

	_, err := uc.SetStatus(ctx, testAdmin, "user-2", entity.StatusDisabled)
	assert.ErrorIs(t, err, errAuditDown)

	stored, err := repos.Users.GetByID(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, stored.Status)
}

// ─── Borrado ─────────────────────────────────────────────────────────────────

func TestDeleteUser(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc, _ := newAdminUC(repos, tx)
	ctx := context.Background()

	require.NoError(t, uc.DeleteUser(ctx, testAdmin, "user-2"))
	gone, err := repos.Users.GetByID(ctx, "user-2")
	require.NoError(t, err)
	assert.Nil(t, gone)

	n, err := repos.AuditLogs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// id inexistente: no hace nada ni audita
	require.NoError(t, uc.DeleteUser(ctx, testAdmin, "user-2"))
	n, err = repos.AuditLogs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.ErrorIs(t, uc.DeleteUser(ctx, testAdmin, "admin-9"), domain.ErrForbiddenTarget)
}

func TestDeleteUser_FalloDeAuditoriaConservaCuentaYOrden(t *testing.T) {
	repos, tx := newTestReposTx()
	seedUsers(t, repos)
	uc := NewAdminUseCase(repos.Users, failingAuditTx{tx}, NewAuditUseCase(repos.AuditLogs), nil)
	ctx := context.Background()

	err := uc.DeleteUser(ctx, testAdmin, "user-2")
	assert.ErrorIs(t, err, errAuditDown)

	restored, err := repos.Users.GetByID(ctx, "user-2")
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "john", restored.Username)

	list, err := uc.ListUsers(ctx, testAdmin)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"user-2", "user-3", "admin-9"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
