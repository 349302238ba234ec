package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderRepo pedidos del checkout público.
type OrderRepo struct {
	docs   DocumentStore
	orders collection[orderDoc]
}

// NewOrderRepo construye el repositorio de pedidos.
func NewOrderRepo(docs DocumentStore) *OrderRepo {
	return &OrderRepo{docs: docs, orders: collection[orderDoc]{docs: docs, name: CollectionOrders}}
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if _, err := r.orders.put(ctx, order.ID, newOrderDoc(order), 0); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	rec, err := r.orders.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return rec.value.toEntity(), nil
}

func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if _, err := r.orders.put(ctx, order.ID, newOrderDoc(order), AnyVersion); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByBusiness pedidos del negocio, más recientes primero.
func (r *OrderRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Order, error) {
	recs, err := r.orders.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var out []*entity.Order
	for i := len(recs) - 1; i >= 0; i-- {
		if recs[i].value.BusinessID == businessID {
			out = append(out, recs[i].value.toEntity())
		}
	}
	return out, nil
}

// Summary cuenta y suma los pedidos del negocio. Usa la agregación del backend si existe.
func (r *OrderRepo) Summary(ctx context.Context, businessID string) (*entity.OrderSummary, error) {
	if summer, ok := r.docs.(FieldSummer); ok {
		count, total, err := summer.SumField(ctx, CollectionOrders, "businessId", businessID, "amount")
		if err != nil {
			return nil, fmt.Errorf("order summary: %w", err)
		}
		return &entity.OrderSummary{Count: count, Total: total}, nil
	}
	recs, err := r.orders.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("order summary: %w", err)
	}
	sum := &entity.OrderSummary{Total: decimal.Zero}
	for _, rec := range recs {
		if rec.value.BusinessID != businessID {
			continue
		}
		sum.Count++
		sum.Total = sum.Total.Add(rec.value.Amount)
	}
	return sum, nil
}
