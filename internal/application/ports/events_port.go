package ports

import "context"

// Sujetos de eventos publicados por la aplicación.
const (
	SubjectBusinessUpdated = "business.updated"
)

// BusinessUpdatedEvent aviso de que el perfil de un negocio cambió (logo, nombre, catálogo).
type BusinessUpdatedEvent struct {
	BusinessID string `json:"business_id"`
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url,omitempty"`
	Version    int64  `json:"version"`
}

// EventPublisher canal de difusión sin confirmación (fire-and-forget).
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
