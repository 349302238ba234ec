package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/jhoicas/Storefront-api/internal/application/ports"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-z0-9]+`)

// PosterUseCase afiche imprimible con los QR de WhatsApp y del checkout.
type PosterUseCase struct {
	business      *BusinessUseCase
	gen           ports.PosterGenerator
	publicBaseURL string
}

// NewPosterUseCase construye el caso de uso del afiche.
func NewPosterUseCase(business *BusinessUseCase, gen ports.PosterGenerator, publicBaseURL string) *PosterUseCase {
	return &PosterUseCase{business: business, gen: gen, publicBaseURL: publicBaseURL}
}

// Download genera el PDF del negocio del actor (o del perfil por defecto) y el nombre de archivo sugerido.
func (uc *PosterUseCase) Download(ctx context.Context, actor *entity.User) ([]byte, string, error) {
	b, err := uc.business.GetOrDefaultForOwner(ctx, actor)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.gen.GeneratePoster(ctx, ports.PosterData{
		BusinessName:   b.Name,
		Description:    b.Description,
		WelcomeMessage: b.WelcomeMessage,
		WhatsAppNumber: b.WhatsAppNumber,
		WhatsAppLink:   WhatsAppLink(b.WhatsAppNumber, b.WelcomeMessage),
		CheckoutURL:    CheckoutURL(uc.publicBaseURL, b.ID),
		ThemeColor:     b.ThemeColor,
	})
	if err != nil {
		return nil, "", err
	}
	return pdf, posterFilename(b.Name), nil
}

func posterFilename(name string) string {
	slug := strings.Trim(unsafeFilenameRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "storefront"
	}
	return slug + "-poster.pdf"
}
