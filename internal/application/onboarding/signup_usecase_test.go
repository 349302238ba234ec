package onboarding_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Storefront-api/internal/application/auth"
	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/onboarding"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/memory"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
)

const publicInvite = "DAV-PRO-PUBLIC-INVITE"

type fixture struct {
	signup   *onboarding.SignupUseCase
	auth     *auth.AuthUseCase
	business *usecase.BusinessUseCase
	repos    repository.Repositories
}

func newFixture(codes ...string) fixture {
	docs := memory.NewDocumentStore()
	repos := store.NewRepositories(docs)
	tx := store.NewTxRunner(docs)
	authUC := auth.NewAuthUseCase(repos.Users, memory.NewSessionStore(), tx, auth.Config{
		JWT:        auth.JWTConfig{Secret: "s", ExpMinutes: 60, Issuer: "test"},
		Admin:      auth.AdminCredential{Email: "admin@davproai.com", Password: "x"},
		BcryptCost: bcrypt.MinCost,
	})
	business := usecase.NewBusinessUseCase(repos.Businesses, nil, nil, nil)
	return fixture{
		signup:   onboarding.NewSignupUseCase(tx, authUC, business, codes),
		auth:     authUC,
		business: business,
		repos:    repos,
	}
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		Username:       "john@biz.com",
		Password:       "x",
		FullName:       "John",
		BusinessName:   "Café Sol",
		Description:    "coffee",
		WhatsAppNumber: "573001112233",
	}
}

func TestValidateInvitation(t *testing.T) {
	open := newFixture()
	assert.NoError(t, open.signup.ValidateInvitation("cualquiera"))
	assert.ErrorIs(t, open.signup.ValidateInvitation("  "), domain.ErrInvalidInvitation)

	closed := newFixture(publicInvite)
	assert.NoError(t, closed.signup.ValidateInvitation(publicInvite))
	assert.ErrorIs(t, closed.signup.ValidateInvitation("OTRO"), domain.ErrInvalidInvitation)
}

func TestSignup_CreaUsuarioNegocioYSesion(t *testing.T) {
	f := newFixture(publicInvite)
	ctx := context.Background()

	resp, err := f.signup.Signup(ctx, publicInvite, signupRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Session.User.Role)
	assert.Equal(t, entity.StatusActive, resp.Session.User.Status)
	assert.Equal(t, resp.Session.User.ID, resp.Business.OwnerID)
	assert.Equal(t, "Café Sol", resp.Business.Name)
	assert.Equal(t, usecase.DefaultOperatingHours, resp.Business.OperatingHours)
	assert.Equal(t, usecase.DefaultBankName, resp.Business.BankName)
	assert.Len(t, resp.Business.Products, 3)

	owned, err := f.business.GetByOwner(ctx, resp.Session.User.ID)
	require.NoError(t, err)
	require.NotNil(t, owned)
	assert.Equal(t, resp.Business.ID, owned.ID)

	sess, err := f.auth.Authenticate(ctx, resp.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Session.User.ID, sess.User.ID)
}

func TestSignup_UsernameDuplicadoNoCreaNegocio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.signup.Signup(ctx, publicInvite, signupRequest())
	require.NoError(t, err)

	_, err = f.signup.Signup(ctx, publicInvite, signupRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	all, err := f.repos.Businesses.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSignup_FalloDelNegocioRevierteUsuario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	in := signupRequest()
	in.BusinessName = ""
	_, err := f.signup.Signup(ctx, "code", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err := f.repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSignup_CodigoInvalido(t *testing.T) {
	f := newFixture(publicInvite)
	_, err := f.signup.Signup(context.Background(), "NOPE", signupRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInvitation)
}
