package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProofRequest comprobante subido por el cliente en el checkout.
type PaymentProofRequest struct {
	CustomerName     string          `json:"customer_name" validate:"required,max=200"`
	CustomerWhatsApp string          `json:"customer_whatsapp" validate:"required,max=32"`
	OrderReference   string          `json:"order_reference" validate:"max=120"`
	Amount           decimal.Decimal `json:"amount"`
	ProofURL         string          `json:"proof_url" validate:"required"`
}

// ProofVerdictDTO veredicto del verificador de comprobantes.
type ProofVerdictDTO struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}

// OrderResponse pedido del checkout.
type OrderResponse struct {
	ID               string          `json:"id"`
	BusinessID       string          `json:"business_id"`
	CustomerName     string          `json:"customer_name"`
	CustomerWhatsApp string          `json:"customer_whatsapp"`
	OrderReference   string          `json:"order_reference"`
	Amount           decimal.Decimal `json:"amount"`
	ProofURL         string          `json:"proof_url,omitempty"`
	Status           string          `json:"status"`
	ProofValid       bool            `json:"proof_valid"`
	ProofReason      string          `json:"proof_reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// PaymentProofResponse resultado del envío del comprobante.
type PaymentProofResponse struct {
	Order   OrderResponse `json:"order"`
	Valid   bool          `json:"valid"`
	Message string        `json:"message"`
}

// ReviewOrderRequest decisión del dueño sobre un pedido.
type ReviewOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED REJECTED"`
}
