// Package onboarding alta de dueños de negocio por código de invitación.
package onboarding

import (
	"context"
	"strings"

	"github.com/jhoicas/Storefront-api/internal/application/auth"
	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/metrics"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// SignupUseCase crea cuenta y negocio en una sola unidad de trabajo.
type SignupUseCase struct {
	tx          repository.TxRunner
	auth        *auth.AuthUseCase
	business    *usecase.BusinessUseCase
	inviteCodes map[string]struct{}
}

// NewSignupUseCase construye el caso de uso. Con inviteCodes vacío se acepta cualquier código no vacío.
func NewSignupUseCase(tx repository.TxRunner, authUC *auth.AuthUseCase, business *usecase.BusinessUseCase, inviteCodes []string) *SignupUseCase {
	codes := make(map[string]struct{}, len(inviteCodes))
	for _, c := range inviteCodes {
		if c = strings.TrimSpace(c); c != "" {
			codes[c] = struct{}{}
		}
	}
	return &SignupUseCase{tx: tx, auth: authUC, business: business, inviteCodes: codes}
}

// ValidateInvitation devuelve ErrInvalidInvitation si el código no sirve.
func (uc *SignupUseCase) ValidateInvitation(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.ErrInvalidInvitation
	}
	if len(uc.inviteCodes) == 0 {
		return nil
	}
	if _, ok := uc.inviteCodes[code]; !ok {
		return domain.ErrInvalidInvitation
	}
	return nil
}

// Signup registra al dueño y su negocio. Si algo falla no queda ninguno de los dos registros.
func (uc *SignupUseCase) Signup(ctx context.Context, code string, in dto.SignupRequest) (*dto.SignupResponse, error) {
	if err := uc.ValidateInvitation(code); err != nil {
		return nil, err
	}

	var (
		user     *entity.User
		business *dto.BusinessResponse
	)
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		var err error
		user, err = uc.auth.CreateUserInTx(ctx, repos.Users, auth.NewUser{
			Username: in.Username,
			Password: in.Password,
			FullName: in.FullName,
		})
		if err != nil {
			return err
		}
		business, err = uc.business.CreateInTx(ctx, repos.Businesses, user, dto.CreateBusinessRequest{
			Name:           in.BusinessName,
			Description:    in.Description,
			WhatsAppNumber: in.WhatsAppNumber,
			Address:        in.Address,
			OperatingHours: in.OperatingHours,
			LogoURL:        in.LogoURL,
			BankName:       in.BankName,
			AccountName:    in.AccountName,
			AccountNumber:  in.AccountNumber,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.AuthRegistrations.Inc()

	session, err := uc.auth.StartSession(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.SignupResponse{Session: *session, Business: *business}, nil
}
