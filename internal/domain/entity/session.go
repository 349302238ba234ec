package entity

import "time"

// Session identidad autenticada de un cliente. La última escritura gana.
type Session struct {
	ID        string
	User      User // proyección pública (sin PasswordHash)
	CreatedAt time.Time
	ExpiresAt time.Time
}
