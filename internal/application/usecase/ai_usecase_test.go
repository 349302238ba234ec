package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/ports"
)

func TestWelcomeMessage_TextoDelModelo(t *testing.T) {
	llm := &stubLLM{welcome: "  ¡Hola! Bienvenido a Café Sol.  "}
	uc := NewAIUseCase(llm, nil)

	got := uc.WelcomeMessage(context.Background(), "Café Sol", "coffee")
	assert.Equal(t, "¡Hola! Bienvenido a Café Sol.", got)
}

func TestWelcomeMessage_SinCredencial(t *testing.T) {
	uc := NewAIUseCase(&stubLLM{welcomeErr: ports.ErrNoAPIKey}, nil)
	got := uc.WelcomeMessage(context.Background(), "Café Sol", "great coffee")
	assert.Equal(t, "Welcome to Café Sol! We offer great coffee. How can we help?", got)

	assert.Equal(t, got, NewAIUseCase(nil, nil).WelcomeMessage(context.Background(), "Café Sol", "great coffee"))
}

func TestWelcomeMessage_ErrorOVacio(t *testing.T) {
	want := "Welcome to Café Sol! How can we help you today?"

	uc := NewAIUseCase(&stubLLM{welcomeErr: errors.New("boom")}, nil)
	assert.Equal(t, want, uc.WelcomeMessage(context.Background(), "Café Sol", "x"))

	uc = NewAIUseCase(&stubLLM{welcome: "   "}, nil)
	assert.Equal(t, want, uc.WelcomeMessage(context.Background(), "Café Sol", "x"))
}

func TestVerifyPaymentProof(t *testing.T) {
	ctx := context.Background()

	v, fallback := NewAIUseCase(&stubLLM{verdict: &dto.ProofVerdictDTO{Valid: false, Reason: "blurry"}}, nil).VerifyPaymentProof(ctx, "https://x/p.png")
	assert.False(t, fallback)
	assert.Equal(t, dto.ProofVerdictDTO{Valid: false, Reason: "blurry"}, v)

	v, fallback = NewAIUseCase(&stubLLM{verdictErr: ports.ErrNoAPIKey}, nil).VerifyPaymentProof(ctx, "x")
	assert.True(t, fallback)
	assert.True(t, v.Valid)
	assert.Equal(t, "Mock validation: API Key missing.", v.Reason)

	v, fallback = NewAIUseCase(&stubLLM{verdictErr: context.DeadlineExceeded}, nil).VerifyPaymentProof(ctx, "x")
	assert.True(t, fallback)
	assert.False(t, v.Valid)
	assert.Equal(t, "AI Analysis failed to run.", v.Reason)
}
