// Package memory contiene adaptadores en proceso para desarrollo y pruebas.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
)

type collection struct {
	order []string
	docs  map[string]store.Document
}

func (c *collection) clone() *collection {
	out := &collection{order: make([]string, len(c.order)), docs: make(map[string]store.Document, len(c.docs))}
	copy(out.order, c.order)
	for k, v := range c.docs {
		out.docs[k] = v
	}
	return out
}

type dataset map[string]*collection

func (d dataset) clone() dataset {
	out := make(dataset, len(d))
	for k, v := range d {
		out[k] = v.clone()
	}
	return out
}

// DocumentStore implementa store.DocumentStore en memoria. Las transacciones toman el
// candado completo y restauran una instantánea si fn falla.
type DocumentStore struct {
	mu   *sync.Mutex
	data *dataset
	inTx bool
}

// NewDocumentStore construye un almacén vacío.
func NewDocumentStore() *DocumentStore {
	data := dataset{}
	return &DocumentStore{mu: &sync.Mutex{}, data: &data}
}

var _ store.DocumentStore = (*DocumentStore)(nil)

func (s *DocumentStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *DocumentStore) coll(name string) *collection {
	c, ok := (*s.data)[name]
	if !ok {
		c = &collection{docs: map[string]store.Document{}}
		(*s.data)[name] = c
	}
	return c
}

func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer s.lock()()
	doc, ok := s.coll(collection).docs[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (s *DocumentStore) List(ctx context.Context, collection string) ([]store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer s.lock()()
	c := s.coll(collection)
	out := make([]store.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out, nil
}

func (s *DocumentStore) Put(ctx context.Context, collection string, doc store.Document) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer s.lock()()
	c := s.coll(collection)
	current, exists := c.docs[doc.ID]
	switch {
	case doc.Version == store.AnyVersion:
	case doc.Version == 0 && exists:
		return 0, store.ErrVersionConflict
	case doc.Version > 0 && (!exists || current.Version != doc.Version):
		return 0, store.ErrVersionConflict
	}
	next := int64(1)
	if exists {
		next = current.Version + 1
	} else {
		c.order = append(c.order, doc.ID)
	}
	data := make([]byte, len(doc.Data))
	copy(data, doc.Data)
	c.docs[doc.ID] = store.Document{ID: doc.ID, Version: next, Data: data}
	return next, nil
}

func (s *DocumentStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	defer s.lock()()
	c := s.coll(collection)
	if _, ok := c.docs[id]; !ok {
		return false, nil
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *DocumentStore) Count(ctx context.Context, collection string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	defer s.lock()()
	return len(s.coll(collection).docs), nil
}

// RunInTx serializa fn contra el resto de operaciones. Las transacciones anidadas
// comparten el candado y tienen su propia instantánea.
func (s *DocumentStore) RunInTx(ctx context.Context, fn func(tx store.DocumentStore) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer s.lock()()
	snapshot := s.data.clone()
	tx := &DocumentStore{mu: s.mu, data: s.data, inTx: true}
	if err := fn(tx); err != nil {
		*s.data = snapshot
		return err
	}
	return nil
}
