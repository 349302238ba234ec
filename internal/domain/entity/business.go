package entity

import "time"

// Business es el perfil de tienda de un dueño (relación 1:1 por convención con User).
// Se reemplaza completo en cada guardado, incluidos los productos embebidos.
type Business struct {
	ID             string
	OwnerID        string
	Name           string
	Description    string
	Address        string
	OperatingHours string
	LogoURL        string // URL o data URL
	WhatsAppNumber string
	WelcomeMessage string
	BankName       string
	AccountName    string
	AccountNumber  string
	Products       []Product
	ThemeColor     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// OwnedBy informa si el negocio pertenece al usuario.
func (b *Business) OwnedBy(userID string) bool {
	return b.OwnerID == userID
}
