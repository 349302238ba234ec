package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/ports"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

// aiTimeout tope por llamada al LLM.
const aiTimeout = 10 * time.Second

// Textos de respaldo cuando el colaborador de IA no está disponible.
const (
	proofNoKeyReason  = "Mock validation: API Key missing."
	proofFailedReason = "AI Analysis failed to run."
)

// AIUseCase orquesta las llamadas al colaborador de IA y aplica los textos de respaldo.
// Aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type AIUseCase struct {
	llm ports.LLMService
	log *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService. llm puede ser nil.
func NewAIUseCase(llm ports.LLMService, log *logger.Logger) *AIUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AIUseCase{llm: llm, log: log}
}

// WelcomeMessage redacta el saludo del auto-respondedor. Nunca falla: sin credencial
// devuelve un texto genérico con la descripción y ante un error, uno más corto.
func (uc *AIUseCase) WelcomeMessage(ctx context.Context, businessName, description string) string {
	if uc.llm == nil {
		return noKeyWelcome(businessName, description)
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.llm.GenerateWelcomeMessage(ctx, businessName, description)
	switch {
	case errors.Is(err, ports.ErrNoAPIKey):
		return noKeyWelcome(businessName, description)
	case err != nil:
		uc.log.Warn().Err(err).Str("business", businessName).Msg("mensaje de bienvenida IA no disponible")
		return "Welcome to " + businessName + "! How can we help you today?"
	}
	text = strings.TrimSpace(text)
	if text == "" {
		uc.log.Warn().Str("business", businessName).Msg("el modelo devolvió un saludo vacío")
		return "Welcome to " + businessName + "! How can we help you today?"
	}
	return text
}

// VerifyPaymentProof pide el veredicto sobre un comprobante. fallback=true indica que
// el veredicto no proviene del modelo (sin credencial o fallo de la llamada).
func (uc *AIUseCase) VerifyPaymentProof(ctx context.Context, imageRef string) (verdict dto.ProofVerdictDTO, fallback bool) {
	if uc.llm == nil {
		return dto.ProofVerdictDTO{Valid: true, Reason: proofNoKeyReason}, true
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	result, err := uc.llm.AnalyzePaymentProof(ctx, imageRef)
	switch {
	case errors.Is(err, ports.ErrNoAPIKey):
		return dto.ProofVerdictDTO{Valid: true, Reason: proofNoKeyReason}, true
	case err != nil || result == nil:
		uc.log.Warn().Err(err).Msg("verificación IA del comprobante falló")
		return dto.ProofVerdictDTO{Valid: false, Reason: proofFailedReason}, true
	}
	return *result, false
}

func noKeyWelcome(businessName, description string) string {
	return "Welcome to " + businessName + "! We offer " + description + ". How can we help?"
}
