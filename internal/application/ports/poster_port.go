package ports

import "context"

// PosterData contenido del afiche imprimible de la tienda.
type PosterData struct {
	BusinessName   string
	Description    string
	WelcomeMessage string
	WhatsAppNumber string
	WhatsAppLink   string
	CheckoutURL    string
	ThemeColor     string
}

// PosterGenerator genera el PDF del afiche con los códigos QR.
type PosterGenerator interface {
	GeneratePoster(ctx context.Context, data PosterData) ([]byte, error)
}
