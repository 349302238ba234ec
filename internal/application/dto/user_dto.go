package dto

import "time"

// RegisterRequest entrada para registro directo (auth).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=120"`
	Password string `json:"password" validate:"required,min=1,max=72"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
}

// LoginRequest entrada para login: username o email + password.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// UserResponse proyección pública de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse token de sesión + usuario autenticado.
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// AdminUserResponse fila de la consola de administración.
type AdminUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// SetStatusRequest cambio de estado de una cuenta.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE DISABLED"`
}
