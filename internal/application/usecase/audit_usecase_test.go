package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

func TestAuditList_VaciaDevuelveEntradaDeOrigen(t *testing.T) {
	repos := newTestRepos()
	uc := NewAuditUseCase(repos.AuditLogs)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, InitAuditEntryID, list[0].ID)
	assert.Equal(t, "Audit Log System Initialized", list[0].Details)

	n, err := repos.AuditLogs.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n, "la entrada sintética no se persiste")
}

func TestAuditRecord_PersisteOrigenYOrdenaDescendente(t *testing.T) {
	repos := newTestRepos()
	uc := NewAuditUseCase(repos.AuditLogs)
	uc.now = clock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, uc.Record(ctx, entity.AuditUserBanned, "Super Admin", "John", "Admin changed status from ACTIVE to DISABLED"))
	require.NoError(t, uc.Record(ctx, entity.AuditUserDeleted, "Super Admin", "Alice", "User account permanently deleted by admin"))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, entity.AuditUserDeleted, list[0].Action)
	assert.Equal(t, entity.AuditUserBanned, list[1].Action)
	assert.Equal(t, InitAuditEntryID, list[2].ID)
}

func TestAuditList_EmpateGanaLaMasReciente(t *testing.T) {
	repos := newTestRepos()
	uc := NewAuditUseCase(repos.AuditLogs)
	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }
	ctx := context.Background()

	require.NoError(t, uc.Record(ctx, entity.AuditSystemUpdate, "A", "SYSTEM", "primero"))
	require.NoError(t, uc.Record(ctx, entity.AuditSystemUpdate, "A", "SYSTEM", "segundo"))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "segundo", list[0].Details)
	assert.Equal(t, "primero", list[1].Details)
	assert.Equal(t, InitAuditEntryID, list[2].ID)
}

func TestAuditRecord_AccionInvalida(t *testing.T) {
	uc := NewAuditUseCase(newTestRepos().AuditLogs)
	err := uc.Record(context.Background(), "USER_PROMOTED", "A", "B", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
