package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/metrics"
	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// CheckoutUseCase checkout público y revisión de pedidos por el dueño.
type CheckoutUseCase struct {
	businesses repository.BusinessRepository
	orders     repository.OrderRepository
	ai         *AIUseCase
	now        func() time.Time
}

// NewCheckoutUseCase construye el caso de uso de checkout.
func NewCheckoutUseCase(businesses repository.BusinessRepository, orders repository.OrderRepository, ai *AIUseCase) *CheckoutUseCase {
	if ai == nil {
		ai = NewAIUseCase(nil, nil)
	}
	return &CheckoutUseCase{businesses: businesses, orders: orders, ai: ai, now: time.Now}
}

// GetStorefront vista pública del negocio. ErrNotFound si no existe.
func (uc *CheckoutUseCase) GetStorefront(ctx context.Context, businessID string) (*dto.StorefrontResponse, error) {
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	r := toBusinessResponse(b, true)
	return &dto.StorefrontResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Address:        r.Address,
		OperatingHours: r.OperatingHours,
		LogoURL:        r.LogoURL,
		WhatsAppNumber: r.WhatsAppNumber,
		WelcomeMessage: r.WelcomeMessage,
		BankName:       r.BankName,
		AccountName:    r.AccountName,
		AccountNumber:  r.AccountNumber,
		Products:       r.Products,
		ThemeColor:     r.ThemeColor,
		WhatsAppLink:   WhatsAppLink(r.WhatsAppNumber, r.WelcomeMessage),
	}, nil
}

// SubmitPaymentProof verifica el comprobante con IA y registra el pedido en PENDING.
// El veredicto es informativo: el dueño confirma o rechaza después.
func (uc *CheckoutUseCase) SubmitPaymentProof(ctx context.Context, businessID string, in dto.PaymentProofRequest) (*dto.PaymentProofResponse, error) {
	b, err := uc.businesses.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("monto negativo: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ProofURL) == "" {
		return nil, fmt.Errorf("el comprobante es obligatorio: %w", domain.ErrInvalidInput)
	}

	verdict, fallback := uc.ai.VerifyPaymentProof(ctx, in.ProofURL)
	order := &entity.Order{
		ID:               uuid.New().String(),
		BusinessID:       b.ID,
		CustomerName:     in.CustomerName,
		CustomerWhatsApp: in.CustomerWhatsApp,
		OrderReference:   in.OrderReference,
		Amount:           in.Amount,
		ProofURL:         in.ProofURL,
		Status:           entity.OrderPending,
		ProofValid:       verdict.Valid,
		ProofReason:      verdict.Reason,
		CreatedAt:        uc.now(),
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	switch {
	case fallback:
		metrics.CheckoutProofs.WithLabelValues("fallback").Inc()
	case verdict.Valid:
		metrics.CheckoutProofs.WithLabelValues("valid").Inc()
	default:
		metrics.CheckoutProofs.WithLabelValues("invalid").Inc()
	}

	msg := "AI Verification Successful: Proof looks authentic."
	if !verdict.Valid {
		msg = "AI Verification Warning: " + verdict.Reason
	}
	return &dto.PaymentProofResponse{Order: toOrderResponse(order), Valid: verdict.Valid, Message: msg}, nil
}

// ListOrders pedidos del negocio del actor, más recientes primero.
func (uc *CheckoutUseCase) ListOrders(ctx context.Context, actor *entity.User) ([]dto.OrderResponse, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	b, err := uc.businesses.GetByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	out := []dto.OrderResponse{}
	if b == nil {
		return out, nil
	}
	orders, err := uc.orders.ListByBusiness(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// ReviewOrder el dueño del negocio (o un ADMIN) confirma o rechaza el pedido.
func (uc *CheckoutUseCase) ReviewOrder(ctx context.Context, actor *entity.User, orderID, status string) (*dto.OrderResponse, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if status != entity.OrderConfirmed && status != entity.OrderRejected {
		return nil, fmt.Errorf("estado de pedido %q: %w", status, domain.ErrInvalidInput)
	}
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role != entity.RoleAdmin {
		b, err := uc.businesses.GetByID(ctx, o.BusinessID)
		if err != nil {
			return nil, err
		}
		if b == nil || !b.OwnedBy(actor.ID) {
			return nil, domain.ErrForbidden
		}
	}
	o.Status = status
	if err := uc.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		BusinessID:       o.BusinessID,
		CustomerName:     o.CustomerName,
		CustomerWhatsApp: o.CustomerWhatsApp,
		OrderReference:   o.OrderReference,
		Amount:           o.Amount,
		ProofURL:         o.ProofURL,
		Status:           o.Status,
		ProofValid:       o.ProofValid,
		ProofReason:      o.ProofReason,
		CreatedAt:        o.CreatedAt,
	}
}
