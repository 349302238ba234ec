package repository

import "context"

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	Users      UserRepository
	Businesses BusinessRepository
	AuditLogs  AuditLogRepository
	Settings   SettingsRepository
	Orders     OrderRepository
}

// TxRunner ejecuta fn dentro de una transacción; si fn devuelve error se descartan todas las escrituras.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}
