package repository

import (
	"context"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas sin resultado devuelven (nil, nil).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByIdentifier devuelve los usuarios cuyo username o email coinciden exactamente.
	FindByIdentifier(ctx context.Context, identifier string) ([]*entity.User, error)
	// List devuelve los usuarios en orden de inserción.
	List(ctx context.Context) ([]*entity.User, error)
	// Update reemplaza el registro si user.Version coincide con la versión almacenada;
	// si no, devuelve domain.ErrConflict. Actualiza user.Version.
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
