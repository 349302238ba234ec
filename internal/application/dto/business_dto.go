package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductDTO ítem del catálogo embebido en el negocio.
type ProductDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required,max=200"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

// CreateBusinessRequest datos del negocio al aprovisionar. Los opcionales vacíos toman valores por defecto.
type CreateBusinessRequest struct {
	Name           string `json:"name" validate:"required,max=200"`
	Description    string `json:"description" validate:"max=2000"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"required,max=32"`
	Address        string `json:"address,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty"`
	LogoURL        string `json:"logo_url,omitempty"`
	WelcomeMessage string `json:"welcome_message,omitempty"`
	BankName       string `json:"bank_name,omitempty"`
	AccountName    string `json:"account_name,omitempty"`
	AccountNumber  string `json:"account_number,omitempty"`
	ThemeColor     string `json:"theme_color,omitempty"`
}

// UpdateBusinessRequest reemplazo completo del perfil, incluidos los productos.
// Version es el sello leído; 0 indica un perfil que nunca se guardó.
type UpdateBusinessRequest struct {
	ID             string       `json:"id" validate:"required"`
	Name           string       `json:"name" validate:"required,max=200"`
	Description    string       `json:"description" validate:"max=2000"`
	Address        string       `json:"address"`
	OperatingHours string       `json:"operating_hours"`
	LogoURL        string       `json:"logo_url"`
	WhatsAppNumber string       `json:"whatsapp_number" validate:"max=32"`
	WelcomeMessage string       `json:"welcome_message"`
	BankName       string       `json:"bank_name"`
	AccountName    string       `json:"account_name"`
	AccountNumber  string       `json:"account_number"`
	Products       []ProductDTO `json:"products" validate:"dive"`
	ThemeColor     string       `json:"theme_color"`
	Version        int64        `json:"version" validate:"min=0"`
}

// BusinessResponse perfil del negocio. Persisted=false cuando es el perfil por defecto sin guardar.
type BusinessResponse struct {
	ID             string       `json:"id"`
	OwnerID        string       `json:"owner_id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Address        string       `json:"address"`
	OperatingHours string       `json:"operating_hours"`
	LogoURL        string       `json:"logo_url"`
	WhatsAppNumber string       `json:"whatsapp_number"`
	WelcomeMessage string       `json:"welcome_message"`
	BankName       string       `json:"bank_name"`
	AccountName    string       `json:"account_name"`
	AccountNumber  string       `json:"account_number"`
	Products       []ProductDTO `json:"products"`
	ThemeColor     string       `json:"theme_color"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	Version        int64        `json:"version"`
	Persisted      bool         `json:"persisted"`
}

// StorefrontResponse vista pública del negocio para el checkout (sin dueño).
type StorefrontResponse struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Address        string       `json:"address"`
	OperatingHours string       `json:"operating_hours"`
	LogoURL        string       `json:"logo_url"`
	WhatsAppNumber string       `json:"whatsapp_number"`
	WelcomeMessage string       `json:"welcome_message"`
	BankName       string       `json:"bank_name"`
	AccountName    string       `json:"account_name"`
	AccountNumber  string       `json:"account_number"`
	Products       []ProductDTO `json:"products"`
	ThemeColor     string       `json:"theme_color"`
	WhatsAppLink   string       `json:"whatsapp_link"`
}

// WelcomeMessageResponse texto generado para el saludo automático.
type WelcomeMessageResponse struct {
	WelcomeMessage string           `json:"welcome_message"`
	Business       BusinessResponse `json:"business"`
}
