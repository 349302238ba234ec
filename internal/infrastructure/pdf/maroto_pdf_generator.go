// Package pdf genera el afiche imprimible de la tienda con códigos QR.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio + descripción                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SALUDO: mensaje de bienvenida                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  QR WhatsApp            │  QR Checkout                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: número de WhatsApp + URL del checkout              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Storefront-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorDefault = &props.Color{Red: 14, Green: 165, Blue: 233} // #0ea5e9
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPosterGenerator implementa ports.PosterGenerator usando Maroto v2.
type MarotoPosterGenerator struct{}

var _ ports.PosterGenerator = (*MarotoPosterGenerator)(nil)

// NewMarotoPosterGenerator construye el generador.
func NewMarotoPosterGenerator() *MarotoPosterGenerator { return &MarotoPosterGenerator{} }

// GeneratePoster genera el PDF y devuelve sus bytes.
func (g *MarotoPosterGenerator) GeneratePoster(_ context.Context, data ports.PosterData) ([]byte, error) {
	primary := parseHexColor(data.ThemeColor)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(data.BusinessName, true).
		WithAuthor(data.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data, primary))
	m.AddRows(line.NewRow(1, props.Line{Color: primary, Thickness: 0.6}))
	m.AddRows(welcomeRow(data.WelcomeMessage))
	m.AddRows(line.NewRow(4))
	m.AddRows(qrRow(data, primary))
	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data ports.PosterData, primary *props.Color) core.Row {
	return row.New(30).Add(
		col.New(12).Add(
			text.New(data.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 24, Align: align.Center, Color: primary, Top: 2,
			}),
			text.New(nonEmpty(data.Description, " "), props.Text{
				Size: 11, Align: align.Center, Top: 16, Color: colorGray,
			}),
		),
	)
}

func welcomeRow(welcome string) core.Row {
	return row.New(24).Add(
		col.New(12).Add(
			text.New(nonEmpty(welcome, "Welcome! How can we assist you today?"), props.Text{
				Style: fontstyle.Italic, Size: 13, Align: align.Center, Top: 6,
			}),
		),
	)
}

// qrRow: QR del chat de WhatsApp (izq) y del checkout (der).
func qrRow(data ports.PosterData, primary *props.Color) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: primary})
	}
	return row.New(95).Add(
		col.New(6).Add(
			label("Chat on WhatsApp"),
			code.NewQr(data.WhatsAppLink, props.Rect{Percent: 80, Center: true, Top: 10}),
		),
		col.New(6).Add(
			label("Pay & upload your receipt"),
			code.NewQr(data.CheckoutURL, props.Rect{Percent: 80, Center: true, Top: 10}),
		),
	)
}

func footerRow(data ports.PosterData) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("WhatsApp: +"+strings.TrimPrefix(data.WhatsAppNumber, "+"), props.Text{
				Size: 10, Align: align.Center, Top: 2,
			}),
			text.New(data.CheckoutURL, props.Text{
				Size: 8, Align: align.Center, Top: 8, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseHexColor convierte "#rrggbb" en color; cualquier otro valor devuelve el azul por defecto.
func parseHexColor(hex string) *props.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return colorDefault
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorDefault
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}
}
