package entity

import "github.com/shopspring/decimal"

// Product es un ítem del catálogo embebido en Business; no es direccionable por sí solo.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal // no negativo
	Description string
}
