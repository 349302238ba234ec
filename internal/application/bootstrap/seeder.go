// Package bootstrap siembra los datos de demostración una sola vez por almacén.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Storefront-api/internal/application/usecase"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

// DemoPassword password de las cuentas de demostración.
const DemoPassword = "password"

type demoUser struct {
	id, name, username, email, status, avatarSeed string
	age                                           time.Duration
}

var demoUsers = []demoUser{
	{"user-2", "John Doe", "john", "john.doe@example.com", entity.StatusActive, "john", 30 * 24 * time.Hour},
	{"user-3", "Alice Wonder", "alice", "alice@crypto-scam.net", entity.StatusDisabled, "alice", 7 * 24 * time.Hour},
	{"user-4", "Michael Scott", "michael", "michael@dunder-mifflin.com", entity.StatusActive, "michael", 24 * time.Hour},
}

// Seeder siembra cuentas de demo y la entrada de origen de la bitácora.
type Seeder struct {
	tx   repository.TxRunner
	cost int
	log  *logger.Logger
	now  func() time.Time
}

// NewSeeder construye el sembrador. cost 0 usa bcrypt.DefaultCost.
func NewSeeder(tx repository.TxRunner, cost int, log *logger.Logger) *Seeder {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{tx: tx, cost: cost, log: log, now: time.Now}
}

// Run es idempotente: el marcador bootstrap en systemSettings evita una segunda siembra.
func (s *Seeder) Run(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), s.cost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}
	now := s.now()

	seeded := 0
	err = s.tx.Run(ctx, func(repos repository.Repositories) error {
		done, err := repos.Settings.IsBootstrapped(ctx)
		if err != nil || done {
			return err
		}

		n, err := repos.Users.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			for _, d := range demoUsers {
				u := &entity.User{
					ID:           d.id,
					Username:     d.username,
					Email:        d.email,
					PasswordHash: string(hash),
					Name:         d.name,
					Role:         entity.RoleUser,
					Status:       d.status,
					Avatar:       "https://picsum.photos/seed/" + d.avatarSeed + "/100/100",
					CreatedAt:    now.Add(-d.age),
				}
				if err := repos.Users.Create(ctx, u); err != nil {
					return fmt.Errorf("seed %s: %w", d.id, err)
				}
				seeded++
			}
		}

		logs, err := repos.AuditLogs.Count(ctx)
		if err != nil {
			return err
		}
		if logs == 0 {
			if err := repos.AuditLogs.Append(ctx, usecase.InitAuditEntry(now)); err != nil {
				return err
			}
		}
		return repos.Settings.MarkBootstrapped(ctx, now)
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if seeded > 0 {
		s.log.Info().Int("users", seeded).Msg("datos de demostración sembrados")
	}
	return nil
}
