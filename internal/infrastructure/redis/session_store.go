// Package redis implementa el almacén de sesiones sobre Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/Storefront-api/internal/domain"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

const sessionKeyPrefix = "session:"

// sessionPayload forma JSON de la sesión en Redis. Nunca incluye el hash de la contraseña.
type sessionPayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Avatar    string    `json:"avatar,omitempty"`
	UserSince time.Time `json:"userCreatedAt"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStore sesiones con TTL nativo de Redis.
type SessionStore struct {
	client *redis.Client
}

// NewClient construye el cliente Redis.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewSessionStore construye el almacén de sesiones.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

var _ repository.SessionRepository = (*SessionStore)(nil)

// Save escribe la sesión; la última escritura gana.
func (s *SessionStore) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	u := session.User
	value, err := json.Marshal(sessionPayload{
		ID:        session.ID,
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		Avatar:    u.Avatar,
		UserSince: u.CreatedAt,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, value, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Get devuelve (nil, nil) si la sesión no existe o expiró.
func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w: %w", domain.ErrStoreUnavailable, err)
	}
	var p sessionPayload
	if err := json.Unmarshal(val, &p); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &entity.Session{
		ID: p.ID,
		User: entity.User{
			ID:        p.UserID,
			Username:  p.Username,
			Email:     p.Email,
			Name:      p.Name,
			Role:      p.Role,
			Status:    p.Status,
			Avatar:    p.Avatar,
			CreatedAt: p.UserSince,
		},
		CreatedAt: p.CreatedAt,
		ExpiresAt: p.ExpiresAt,
	}, nil
}

// Delete elimina la sesión; es idempotente.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
