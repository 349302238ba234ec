package store

import (
	"context"

	"github.com/jhoicas/Storefront-api/internal/domain/repository"
)

// NewRepositories construye el juego completo de repositorios sobre docs.
func NewRepositories(docs DocumentStore) repository.Repositories {
	return repository.Repositories{
		Users:      NewUserRepo(docs),
		Businesses: NewBusinessRepo(docs),
		AuditLogs:  NewAuditLogRepo(docs),
		Settings:   NewSettingsRepo(docs),
		Orders:     NewOrderRepo(docs),
	}
}

// TxRunner implementa repository.TxRunner sobre DocumentStore.RunInTx.
type TxRunner struct {
	docs DocumentStore
}

// NewTxRunner construye el ejecutor de transacciones.
func NewTxRunner(docs DocumentStore) *TxRunner {
	return &TxRunner{docs: docs}
}

var _ repository.TxRunner = (*TxRunner)(nil)

// Run ejecuta fn con repositorios atados a la transacción. Si fn devuelve error no queda ninguna escritura.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return r.docs.RunInTx(ctx, func(tx DocumentStore) error {
		return fn(NewRepositories(tx))
	})
}
