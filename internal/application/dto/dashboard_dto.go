package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	Business    BusinessResponse `json:"business"`
	OrderCount  int64            `json:"order_count"`
	OrderTotal  decimal.Decimal  `json:"order_total"`
	BankDetails *BankDetailsDTO  `json:"bank_details,omitempty"` // nil si la plataforma los oculta
	CheckoutURL string           `json:"checkout_url"`
}
