package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// Ids de los registros únicos de systemSettings.
const (
	bankDetailsID = "bankDetails"
	bootstrapID   = "bootstrap"
)

// SettingsRepo registros únicos de configuración del sistema.
type SettingsRepo struct {
	bank      collection[bankDoc]
	bootstrap collection[bootstrapDoc]
}

// NewSettingsRepo construye el repositorio de configuración.
func NewSettingsRepo(docs DocumentStore) *SettingsRepo {
	return &SettingsRepo{
		bank:      collection[bankDoc]{docs: docs, name: CollectionSettings},
		bootstrap: collection[bootstrapDoc]{docs: docs, name: CollectionSettings},
	}
}

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// GetBankDetails devuelve (nil, nil) si nunca se guardaron.
func (r *SettingsRepo) GetBankDetails(ctx context.Context) (*entity.SystemBankDetails, error) {
	rec, err := r.bank.get(ctx, bankDetailsID)
	if err != nil {
		return nil, fmt.Errorf("get bank details: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return &entity.SystemBankDetails{
		BankName:      rec.value.BankName,
		AccountName:   rec.value.AccountName,
		AccountNumber: rec.value.AccountNumber,
		IsVisible:     rec.value.IsVisible,
	}, nil
}

// SaveBankDetails sobrescribe el registro completo.
func (r *SettingsRepo) SaveBankDetails(ctx context.Context, details *entity.SystemBankDetails) error {
	doc := &bankDoc{
		BankName:      details.BankName,
		AccountName:   details.AccountName,
		AccountNumber: details.AccountNumber,
		IsVisible:     details.IsVisible,
	}
	if _, err := r.bank.put(ctx, bankDetailsID, doc, AnyVersion); err != nil {
		return fmt.Errorf("save bank details: %w", err)
	}
	return nil
}

func (r *SettingsRepo) IsBootstrapped(ctx context.Context) (bool, error) {
	rec, err := r.bootstrap.get(ctx, bootstrapID)
	if err != nil {
		return false, fmt.Errorf("get bootstrap marker: %w", err)
	}
	return rec != nil, nil
}

// MarkBootstrapped escribe el marcador; si ya existe devuelve domain.ErrConflict.
func (r *SettingsRepo) MarkBootstrapped(ctx context.Context, at time.Time) error {
	if _, err := r.bootstrap.put(ctx, bootstrapID, &bootstrapDoc{CompletedAt: at}, 0); err != nil {
		return fmt.Errorf("mark bootstrap: %w", err)
	}
	return nil
}
