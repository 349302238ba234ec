package repository

import (
	"context"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

// OrderRepository pedidos del checkout público.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Order, error)
	Summary(ctx context.Context, businessID string) (*entity.OrderSummary, error)
}
