package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/ports"
	"github.com/jhoicas/Storefront-api/internal/domain"
)

func newBusinessUC(pub ports.EventPublisher, llm ports.LLMService) (*BusinessUseCase, func() time.Time) {
	repos := newTestRepos()
	uc := NewBusinessUseCase(repos.Businesses, NewAIUseCase(llm, nil), pub, nil)
	uc.now = clock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	return uc, uc.now
}

// ─── Alta ────────────────────────────────────────────────────────────────────

func TestCreate_AplicaValoresPorDefecto(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()

	b, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol", WhatsAppNumber: "573001112233"})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, testOwner.ID, b.OwnerID)
	assert.Equal(t, DefaultOperatingHours, b.OperatingHours)
	assert.Equal(t, "Not Configured", b.BankName)
	assert.Equal(t, "Not Configured", b.AccountName)
	assert.Equal(t, "0000000000", b.AccountNumber)
	assert.Equal(t, DefaultWelcomeMessage, b.WelcomeMessage)
	assert.Equal(t, DefaultThemeColor, b.ThemeColor)
	assert.Len(t, b.Products, 3)
	assert.True(t, b.Persisted)

	got, err := uc.GetByOwner(ctx, testOwner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)
}

func TestCreate_DosVecesMismoDueño(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()

	a, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Uno"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Dos"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	first, err := uc.GetByOwner(ctx, testOwner.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, first.ID, "GetByOwner devuelve el primero en orden de inserción")
}

func TestCreate_NombreObligatorio(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	_, err := uc.Create(context.Background(), testOwner, dto.CreateBusinessRequest{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetOrDefaultForOwner_PerfilSinGuardar(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)

	b, err := uc.GetOrDefaultForOwner(context.Background(), testOwner)
	require.NoError(t, err)
	assert.False(t, b.Persisted)
	assert.Equal(t, "biz-default-owner-1", b.ID)
	assert.Equal(t, "John Doe's Enterprise", b.Name)
	assert.Zero(t, b.Version)

	none, err := uc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Nil(t, none)
}

// ─── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_UpsertDelPerfilPorDefecto(t *testing.T) {
	pub := &recordingPublisher{}
	uc, _ := newBusinessUC(pub, nil)
	ctx := context.Background()

	def, err := uc.GetOrDefaultForOwner(ctx, testOwner)
	require.NoError(t, err)

	in := toUpdateRequest(def)
	in.Name = "Café Sol"
	saved, err := uc.Update(ctx, testOwner, in)
	require.NoError(t, err)
	assert.True(t, saved.Persisted)
	assert.Equal(t, int64(1), saved.Version)
	assert.Equal(t, testOwner.ID, saved.OwnerID)

	require.Len(t, pub.subjects, 1)
	assert.Equal(t, ports.SubjectBusinessUpdated, pub.subjects[0])
	ev := pub.payloads[0].(ports.BusinessUpdatedEvent)
	assert.Equal(t, def.ID, ev.BusinessID)
	assert.Equal(t, "Café Sol", ev.Name)
}

func TestUpdate_SoloDueñoOAdmin(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()

	b, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol"})
	require.NoError(t, err)

	in := toUpdateRequest(b)
	in.Name = "Robado"
	_, err = uc.Update(ctx, otherUser, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in.Name = "Editado por admin"
	saved, err := uc.Update(ctx, testAdmin, in)
	require.NoError(t, err)
	assert.Equal(t, testOwner.ID, saved.OwnerID, "el dueño se conserva")
	assert.True(t, b.CreatedAt.Equal(saved.CreatedAt))
}

func TestUpdate_VersionObsoleta(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()

	b, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol"})
	require.NoError(t, err)

	first := toUpdateRequest(b)
	second := toUpdateRequest(b)
	first.Name = "A"
	second.Name = "B"

	_, err = uc.Update(ctx, testOwner, first)
	require.NoError(t, err)
	_, err = uc.Update(ctx, testOwner, second)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := uc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

func TestUpdate_ValidaProductos(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()
	b, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol"})
	require.NoError(t, err)

	in := toUpdateRequest(b)
	in.Products = []dto.ProductDTO{{Name: "Latte", Price: decimal.NewFromInt(-1)}}
	_, err = uc.Update(ctx, testOwner, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Products = []dto.ProductDTO{{ID: "p1", Name: "Latte"}, {ID: "p1", Name: "Mocha"}}
	_, err = uc.Update(ctx, testOwner, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Products = []dto.ProductDTO{{Name: "Latte", Price: decimal.RequireFromString("4.50")}}
	saved, err := uc.Update(ctx, testOwner, in)
	require.NoError(t, err)
	require.Len(t, saved.Products, 1)
	assert.NotEmpty(t, saved.Products[0].ID)
	assert.True(t, saved.Products[0].Price.Equal(decimal.RequireFromString("4.5")))
}

func TestUpdate_FalloDePublicacionNoFalla(t *testing.T) {
	uc, _ := newBusinessUC(&recordingPublisher{err: errors.New("nats down")}, nil)
	ctx := context.Background()
	b, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, testOwner, toUpdateRequest(b))
	assert.NoError(t, err)
}

// ─── Productos ───────────────────────────────────────────────────────────────

func TestProductos_AgregarEditarEliminar(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()
	_, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol"})
	require.NoError(t, err)

	b, err := uc.AddProduct(ctx, testOwner, dto.ProductDTO{Name: "Latte", Price: decimal.NewFromInt(5)})
	require.NoError(t, err)
	require.Len(t, b.Products, 4)
	latte := b.Products[3]
	assert.Equal(t, "Latte", latte.Name)

	b, err = uc.UpdateProduct(ctx, testOwner, latte.ID, dto.ProductDTO{Name: "Latte grande", Price: decimal.NewFromInt(6)})
	require.NoError(t, err)
	assert.Equal(t, "Latte grande", b.Products[3].Name)
	assert.Equal(t, latte.ID, b.Products[3].ID)

	b, err = uc.DeleteProduct(ctx, testOwner, latte.ID)
	require.NoError(t, err)
	assert.Len(t, b.Products, 3)

	_, err = uc.DeleteProduct(ctx, testOwner, latte.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddProduct_SinNegocioGuardaElPorDefecto(t *testing.T) {
	uc, _ := newBusinessUC(nil, nil)
	ctx := context.Background()

	b, err := uc.AddProduct(ctx, testOwner, dto.ProductDTO{Name: "Latte"})
	require.NoError(t, err)
	assert.True(t, b.Persisted)
	assert.Equal(t, "biz-default-owner-1", b.ID)
	assert.Len(t, b.Products, 4)
}

func TestGenerateWelcomeMessage_GuardaTexto(t *testing.T) {
	uc, _ := newBusinessUC(nil, &stubLLM{welcome: "¡Hola desde Café Sol!"})
	ctx := context.Background()
	_, err := uc.Create(ctx, testOwner, dto.CreateBusinessRequest{Name: "Café Sol"})
	require.NoError(t, err)

	resp, err := uc.GenerateWelcomeMessage(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, "¡Hola desde Café Sol!", resp.WelcomeMessage)
	assert.Equal(t, "¡Hola desde Café Sol!", resp.Business.WelcomeMessage)
}

// ─── Enlaces ─────────────────────────────────────────────────────────────────

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/15550001234?text=Hi", WhatsAppLink("15550001234", ""))
	assert.Equal(t, "https://wa.me/1555?text=Hola%20mundo%21", WhatsAppLink("1555", "Hola mundo!"))
	assert.Equal(t, "https://wa.me/15550102030?text=Hi", WhatsAppLink("+1 (555) 010-2030", ""))
}

func TestCheckoutURL(t *testing.T) {
	assert.Equal(t, "https://shop.example.com/#/checkout/b1", CheckoutURL("https://shop.example.com/", "b1"))
}
