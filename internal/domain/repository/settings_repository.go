package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

// SettingsRepository registros únicos de la colección systemSettings.
type SettingsRepository interface {
	GetBankDetails(ctx context.Context) (*entity.SystemBankDetails, error)
	SaveBankDetails(ctx context.Context, details *entity.SystemBankDetails) error
	IsBootstrapped(ctx context.Context) (bool, error)
	MarkBootstrapped(ctx context.Context, at time.Time) error
}
