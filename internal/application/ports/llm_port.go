package ports

import (
	"context"
	"errors"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
)

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type LLMService interface {
	// GenerateWelcomeMessage redacta un saludo promocional corto para el auto-respondedor de WhatsApp.
	GenerateWelcomeMessage(ctx context.Context, businessName, description string) (string, error)

	// AnalyzePaymentProof evalúa si la imagen (URL o data URL) parece un comprobante de pago válido.
	AnalyzePaymentProof(ctx context.Context, imageRef string) (*dto.ProofVerdictDTO, error)
}

// ErrNoAPIKey lo devuelven los adaptadores cuando no hay credencial configurada.
var ErrNoAPIKey = errors.New("AI: API key no configurada")
