package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Storefront-api/internal/application/ports"
)

// Handler recibe los eventos publicados en un sujeto.
type Handler func(ctx context.Context, payload any)

// EventBus difusión en proceso. Los handlers se ejecutan de forma síncrona en Publish.
type EventBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewEventBus construye un bus vacío.
func NewEventBus() *EventBus {
	return &EventBus{handlers: map[string][]Handler{}}
}

var _ ports.EventPublisher = (*EventBus)(nil)

// Subscribe registra h para el sujeto.
func (b *EventBus) Subscribe(subject string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[subject] = append(b.handlers[subject], h)
}

// Publish entrega payload a todos los suscriptores; sin suscriptores es un no-op.
func (b *EventBus) Publish(ctx context.Context, subject string, payload any) error {
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[subject]...)
	b.mu.RUnlock()
	for _, h := range hs {
		h(ctx, payload)
	}
	return nil
}
