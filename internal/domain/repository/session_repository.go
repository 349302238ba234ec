package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Storefront-api/internal/domain/entity"
)

// SessionRepository almacén de sesiones (memoria o Redis). Get sin resultado devuelve (nil, nil).
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
