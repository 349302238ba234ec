package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/Storefront-api/internal/domain"
)

// record valor decodificado junto con su versión.
type record[T any] struct {
	value   T
	version int64
}

// collection acceso tipado a una colección del DocumentStore.
type collection[T any] struct {
	docs DocumentStore
	name string
}

func (c collection[T]) get(ctx context.Context, id string) (*record[T], error) {
	doc, err := c.docs.Get(ctx, c.name, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(doc.Data, &v); err != nil {
		return nil, fmt.Errorf("decodificar %s/%s: %w", c.name, id, err)
	}
	return &record[T]{value: v, version: doc.Version}, nil
}

func (c collection[T]) list(ctx context.Context) ([]record[T], error) {
	docs, err := c.docs.List(ctx, c.name)
	if err != nil {
		return nil, err
	}
	out := make([]record[T], 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc.Data, &v); err != nil {
			return nil, fmt.Errorf("decodificar %s/%s: %w", c.name, doc.ID, err)
		}
		out = append(out, record[T]{value: v, version: doc.Version})
	}
	return out, nil
}

func (c collection[T]) put(ctx context.Context, id string, v *T, expected int64) (int64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("codificar %s/%s: %w", c.name, id, err)
	}
	version, err := c.docs.Put(ctx, c.name, Document{ID: id, Version: expected, Data: data})
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return 0, fmt.Errorf("%s/%s: %w", c.name, id, domain.ErrConflict)
		}
		return 0, err
	}
	return version, nil
}

func (c collection[T]) delete(ctx context.Context, id string) (bool, error) {
	return c.docs.Delete(ctx, c.name, id)
}

func (c collection[T]) count(ctx context.Context) (int, error) {
	return c.docs.Count(ctx, c.name)
}
