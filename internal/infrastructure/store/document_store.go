// Package store implementa los repositorios del dominio sobre un almacén de documentos
// JSON agrupados por colección. El backend concreto (memoria o PostgreSQL) se inyecta
// como DocumentStore.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// Colecciones persistidas.
const (
	CollectionUsers      = "users"
	CollectionBusinesses = "businesses"
	CollectionAuditLogs  = "auditLogs"
	CollectionSettings   = "systemSettings"
	CollectionOrders     = "orders"
)

// AnyVersion desactiva la comparación de versión en Put (escritura incondicional).
const AnyVersion int64 = -1

// ErrVersionConflict la versión esperada no coincide con la almacenada.
var ErrVersionConflict = errors.New("store: versión en conflicto")

// Document documento JSON identificado por id dentro de una colección.
type Document struct {
	ID      string
	Version int64
	Data    json.RawMessage
}

// DocumentStore puerto del sustrato de persistencia clave → documento JSON.
//
// Put compara Version con la versión almacenada:
//   - AnyVersion: inserta o reemplaza sin comprobar.
//   - 0: solo inserta; si el id existe devuelve ErrVersionConflict.
//   - n > 0: solo reemplaza si la versión almacenada es n.
//
// Devuelve la nueva versión del documento.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	Put(ctx context.Context, collection string, doc Document) (int64, error)
	Delete(ctx context.Context, collection, id string) (bool, error)
	Count(ctx context.Context, collection string) (int, error)
	RunInTx(ctx context.Context, fn func(tx DocumentStore) error) error
}

// FieldSummer lo implementan los backends capaces de agregar un campo numérico en el servidor.
type FieldSummer interface {
	SumField(ctx context.Context, collection, matchField, matchValue, sumField string) (count int64, total decimal.Decimal, err error)
}
