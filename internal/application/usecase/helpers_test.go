package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/memory"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
)

var (
	testAdmin = &entity.User{ID: "admin-1", Name: "Super Admin", Role: entity.RoleAdmin, Status: entity.StatusActive}
	testOwner = &entity.User{ID: "owner-1", Name: "John Doe", Username: "john", Role: entity.RoleUser, Status: entity.StatusActive}
	otherUser = &entity.User{ID: "owner-2", Name: "Alice", Username: "alice", Role: entity.RoleUser, Status: entity.StatusActive}
)

func newTestRepos() repository.Repositories {
	return store.NewRepositories(memory.NewDocumentStore())
}

// newTestReposTx repositorios y ejecutor de transacciones sobre el mismo almacén.
func newTestReposTx() (repository.Repositories, repository.TxRunner) {
	docs := memory.NewDocumentStore()
	return store.NewRepositories(docs), store.NewTxRunner(docs)
}

// clock reloj de prueba que avanza un segundo por lectura.
func clock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// stubLLM colaborador de IA configurable.
type stubLLM struct {
	welcome    string
	welcomeErr error
	verdict    *dto.ProofVerdictDTO
	verdictErr error
	calls      int
}

func (s *stubLLM) GenerateWelcomeMessage(ctx context.Context, name, desc string) (string, error) {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return "", errors.New("sin deadline")
	}
	return s.welcome, s.welcomeErr
}

func (s *stubLLM) AnalyzePaymentProof(ctx context.Context, ref string) (*dto.ProofVerdictDTO, error) {
	s.calls++
	return s.verdict, s.verdictErr
}

// failingAudit bitácora que rechaza las escrituras.
type failingAudit struct {
	repository.AuditLogRepository
}

var errAuditDown = errors.New("audit store down")

func (failingAudit) Append(context.Context, *entity.AuditLogEntry) error { return errAuditDown }
func (failingAudit) Count(context.Context) (int, error)                { return 1, nil }

// failingAuditTx transacciones cuya bitácora rechaza las escrituras.
type failingAuditTx struct {
	repository.TxRunner
}

func (f failingAuditTx) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return f.TxRunner.Run(ctx, func(repos repository.Repositories) error {
		repos.AuditLogs = failingAudit{}
		return fn(repos)
	})
}

// recordingPublisher guarda los eventos o falla si err != nil.
type recordingPublisher struct {
	subjects []string
	payloads []any
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	if p.err != nil {
		return p.err
	}
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, payload)
	return nil
}
