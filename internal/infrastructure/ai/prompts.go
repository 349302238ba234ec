package ai

import "fmt"

const (
	// welcomePrompt plantilla del saludo automático; el modelo responde solo con el texto.
	welcomePrompt = `Write a short, friendly and professional WhatsApp auto-reply welcome message for a business named "%s".
Business description: %s
Rules:
- Maximum 50 words.
- Include one emoji.
- Return only the message text, without quotes or explanations.`

	// proofPrompt instrucciones para verificar un comprobante de pago.
	proofPrompt = `Analyze this image. Is it a valid bank transfer receipt or payment confirmation screenshot?
Return ONLY a JSON object (no markdown) with this exact structure:
{"valid": <true|false>, "reason": "<short explanation, maximum 120 characters>"}`
)

func buildWelcomePrompt(businessName, description string) string {
	return fmt.Sprintf(welcomePrompt, businessName, description)
}

// proofPayload JSON esperado del modelo al verificar un comprobante.
type proofPayload struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason"`
}
