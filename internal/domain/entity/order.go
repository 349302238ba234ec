package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderRejected  = "REJECTED"
)

// Order pedido recibido desde el checkout público con su comprobante de pago.
type Order struct {
	ID               string
	BusinessID       string
	CustomerName     string
	CustomerWhatsApp string
	OrderReference   string
	Amount           decimal.Decimal
	ProofURL         string
	Status           string
	ProofValid       bool   // veredicto del verificador IA
	ProofReason      string
	CreatedAt        time.Time
}

// OrderSummary agregados de pedidos por negocio.
type OrderSummary struct {
	Count int64
	Total decimal.Decimal
}
