// Package messaging publica eventos de la aplicación en NATS.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/Storefront-api/internal/application/ports"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

// natsConn subconjunto de *nats.Conn usado por el publicador.
type natsConn interface {
	Publish(subject string, data []byte) error
}

// NatsPublisher implementa ports.EventPublisher sobre NATS core (sin JetStream).
type NatsPublisher struct {
	conn natsConn
}

var _ ports.EventPublisher = (*NatsPublisher)(nil)

// Connect abre la conexión a NATS con reconexión infinita.
// natsURL ejemplo: "nats://localhost:4222".
func Connect(natsURL, appName string, log *logger.Logger) (*nats.Conn, error) {
	nc, err := nats.Connect(natsURL,
		nats.Name(appName),
		nats.Timeout(5*time.Second),
		nats.PingInterval(20*time.Second),
		nats.MaxPingsOutstanding(3),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS desconectado")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconectado")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("conectar a NATS: %w", err)
	}
	return nc, nil
}

// NewNatsPublisher construye el publicador sobre una conexión abierta.
func NewNatsPublisher(conn natsConn) *NatsPublisher {
	return &NatsPublisher{conn: conn}
}

// Publish serializa payload a JSON y lo publica en subject.
func (p *NatsPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("serializar evento %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publicar %s: %w", subject, err)
	}
	return nil
}
