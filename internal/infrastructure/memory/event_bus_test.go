package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_EntregaASuscriptores(t *testing.T) {
	bus := NewEventBus()
	var got []any
	bus.Subscribe("business.updated", func(_ context.Context, payload any) { got = append(got, payload) })
	bus.Subscribe("otro", func(_ context.Context, _ any) { t.Fatal("sujeto equivocado") })

	require.NoError(t, bus.Publish(context.Background(), "business.updated", "p1"))
	assert.Equal(t, []any{"p1"}, got)
}

func TestEventBus_SinSuscriptores(t *testing.T) {
	assert.NoError(t, NewEventBus().Publish(context.Background(), "nada", 1))
}
