package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
	RoleGuest = "GUEST"
)

// Estados de cuenta.
const (
	StatusActive   = "ACTIVE"
	StatusDisabled = "DISABLED"
)

// User representa una cuenta registrada (dueño de negocio) o el administrador sintético.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt; nunca sale de la capa de servicios
	Name         string
	Role         string // ADMIN, USER, GUEST
	Status       string // ACTIVE, DISABLED
	Avatar       string
	CreatedAt    time.Time
	Version      int64 // sello de concurrencia optimista
}

// IsDisabled informa si la cuenta está bloqueada por un administrador.
func (u *User) IsDisabled() bool {
	return u.Status == StatusDisabled
}

// Identifier devuelve el email o, en registros heredados, el username.
func (u *User) Identifier() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}
