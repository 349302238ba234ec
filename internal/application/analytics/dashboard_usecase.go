// Package analytics contiene el caso de uso del panel del dueño del negocio.
package analytics

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del panel: perfil, pedidos y datos de facturación.
type DashboardUseCase struct {
	business      *usecase.BusinessUseCase
	orders        repository.OrderRepository
	settings      *usecase.SettingsUseCase
	publicBaseURL string
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(business *usecase.BusinessUseCase, orders repository.OrderRepository, settings *usecase.SettingsUseCase, publicBaseURL string) *DashboardUseCase {
	return &DashboardUseCase{business: business, orders: orders, settings: settings, publicBaseURL: publicBaseURL}
}

// Get construye el DashboardDTO del actor.
//
// Dos ramas en paralelo:
//  1. negocio (o perfil por defecto) → resumen de pedidos del negocio
//  2. datos bancarios visibles de la plataforma
func (uc *DashboardUseCase) Get(ctx context.Context, actor *entity.User) (*dto.DashboardDTO, error) {
	var (
		biz     *dto.BusinessResponse
		summary *entity.OrderSummary
		bank    *dto.BankDetailsDTO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b, err := uc.business.GetOrDefaultForOwner(gctx, actor)
		if err != nil {
			return fmt.Errorf("dashboard negocio: %w", err)
		}
		s, err := uc.orders.Summary(gctx, b.ID)
		if err != nil {
			return fmt.Errorf("dashboard pedidos: %w", err)
		}
		biz, summary = b, s
		return nil
	})
	g.Go(func() error {
		d, err := uc.settings.GetVisible(gctx)
		if err != nil {
			return fmt.Errorf("dashboard facturación: %w", err)
		}
		bank = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Business:    *biz,
		OrderCount:  summary.Count,
		OrderTotal:  summary.Total,
		BankDetails: bank,
		CheckoutURL: usecase.CheckoutURL(uc.publicBaseURL, biz.ID),
	}, nil
}
