package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Storefront-api/internal/application/ports"
)

type capturePoster struct {
	got ports.PosterData
}

func (c *capturePoster) GeneratePoster(_ context.Context, data ports.PosterData) ([]byte, error) {
	c.got = data
	return []byte("%PDF-1.3"), nil
}

func TestPosterDownload_PerfilPorDefecto(t *testing.T) {
	repos := newTestRepos()
	gen := &capturePoster{}
	uc := NewPosterUseCase(NewBusinessUseCase(repos.Businesses, nil, nil, nil), gen, "https://shop.example.com")

	pdf, name, err := uc.Download(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, "john-doe-s-enterprise-poster.pdf", name)
	assert.Equal(t, "https://shop.example.com/#/checkout/biz-default-owner-1", gen.got.CheckoutURL)
	assert.Equal(t, "https://wa.me/15550001234?text=Welcome%21%20How%20can%20we%20assist%20you%20today%3F", gen.got.WhatsAppLink)
}
