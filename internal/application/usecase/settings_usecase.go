package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// SettingsUseCase datos bancarios de monetización de la plataforma.
type SettingsUseCase struct {
	repo  repository.SettingsRepository
	audit *AuditUseCase
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, audit *AuditUseCase) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, audit: audit}
}

// Get devuelve el registro guardado o uno vacío y oculto.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.BankDetailsDTO, error) {
	d, err := uc.repo.GetBankDetails(ctx)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return &dto.BankDetailsDTO{}, nil
	}
	return toBankDetailsDTO(d), nil
}

// Save sobrescribe los datos y registra SYSTEM_UPDATE en la bitácora.
func (uc *SettingsUseCase) Save(ctx context.Context, admin *entity.User, in dto.BankDetailsDTO) (*dto.BankDetailsDTO, error) {
	if admin == nil || admin.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	d := &entity.SystemBankDetails{
		BankName:      in.BankName,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		IsVisible:     in.IsVisible,
	}
	if err := uc.repo.SaveBankDetails(ctx, d); err != nil {
		return nil, err
	}
	details := fmt.Sprintf("Admin updated monetization settings. Public: %t", in.IsVisible)
	if err := uc.audit.Record(ctx, entity.AuditSystemUpdate, admin.Name, "SYSTEM", details); err != nil {
		return nil, err
	}
	return toBankDetailsDTO(d), nil
}

// GetVisible vista de facturación para usuarios; nil si la plataforma los oculta.
func (uc *SettingsUseCase) GetVisible(ctx context.Context) (*dto.BankDetailsDTO, error) {
	d, err := uc.repo.GetBankDetails(ctx)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.IsVisible {
		return nil, nil
	}
	return toBankDetailsDTO(d), nil
}

func toBankDetailsDTO(d *entity.SystemBankDetails) *dto.BankDetailsDTO {
	return &dto.BankDetailsDTO{
		BankName:      d.BankName,
		AccountName:   d.AccountName,
		AccountNumber: d.AccountNumber,
		IsVisible:     d.IsVisible,
	}
}
