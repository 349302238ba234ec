package dto

import "time"

// AuditLogResponse entrada de la bitácora de auditoría.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	AdminName  string    `json:"admin_name"`
	TargetUser string    `json:"target_user"`
	Timestamp  time.Time `json:"timestamp"`
	Details    string    `json:"details,omitempty"`
}

// BankDetailsDTO datos bancarios de la plataforma (lectura y escritura).
type BankDetailsDTO struct {
	BankName      string `json:"bank_name" validate:"max=200"`
	AccountName   string `json:"account_name" validate:"max=200"`
	AccountNumber string `json:"account_number" validate:"max=64"`
	IsVisible     bool   `json:"is_visible"`
}
