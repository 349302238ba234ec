package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// BusinessRepo implementa repository.BusinessRepository.
type BusinessRepo struct {
	businesses collection[businessDoc]
}

// NewBusinessRepo construye el repositorio de negocios.
func NewBusinessRepo(docs DocumentStore) *BusinessRepo {
	return &BusinessRepo{businesses: collection[businessDoc]{docs: docs, name: CollectionBusinesses}}
}

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

func (r *BusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	version, err := r.businesses.put(ctx, business.ID, newBusinessDoc(business), 0)
	if err != nil {
		return fmt.Errorf("create business: %w", err)
	}
	business.Version = version
	return nil
}

func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	rec, err := r.businesses.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get business: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return rec.value.toEntity(rec.version), nil
}

func (r *BusinessRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Business, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range all {
		if b.OwnerID == ownerID {
			return b, nil
		}
	}
	return nil, nil
}

// Upsert inserta o reemplaza completo. Version 0 exige que el id no exista.
func (r *BusinessRepo) Upsert(ctx context.Context, business *entity.Business) error {
	version, err := r.businesses.put(ctx, business.ID, newBusinessDoc(business), business.Version)
	if err != nil {
		return fmt.Errorf("upsert business: %w", err)
	}
	business.Version = version
	return nil
}

func (r *BusinessRepo) List(ctx context.Context) ([]*entity.Business, error) {
	recs, err := r.businesses.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	out := make([]*entity.Business, 0, len(recs))
	for i := range recs {
		out = append(out, recs[i].value.toEntity(recs[i].version))
	}
	return out, nil
}
