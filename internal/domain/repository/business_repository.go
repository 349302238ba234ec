package repository

import (
	"context"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	// GetByOwner devuelve el primer negocio del dueño en orden de inserción.
	GetByOwner(ctx context.Context, ownerID string) (*entity.Business, error)
	// Upsert inserta si el id no existe o reemplaza el registro completo si existe.
	// Con versión distinta a la almacenada devuelve domain.ErrConflict.
	Upsert(ctx context.Context, business *entity.Business) error
	List(ctx context.Context) ([]*entity.Business, error)
}
