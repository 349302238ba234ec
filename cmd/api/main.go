package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Storefront-api/internal/application/analytics"
	"github.com/jhoicas/Storefront-api/internal/application/auth"
	"github.com/jhoicas/Storefront-api/internal/application/bootstrap"
	"github.com/jhoicas/Storefront-api/internal/application/onboarding"
	"github.com/jhoicas/Storefront-api/internal/application/ports"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
	"github.com/jhoicas/Storefront-api/internal/domain/repository"
	infraai "github.com/jhoicas/Storefront-api/internal/infrastructure/ai"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/memory"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/messaging"
	infrapdf "github.com/jhoicas/Storefront-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Storefront-api/internal/infrastructure/redis"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Storefront-api/internal/interfaces/http"
	"github.com/jhoicas/Storefront-api/pkg/config"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("sessions", cfg.Session.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	docs, closeStore := openDocumentStore(ctx, cfg, log)
	defer closeStore()

	sessions, closeSessions := openSessionStore(ctx, cfg, log)
	defer closeSessions()

	events, closeEvents := openEventPublisher(cfg, log)
	defer closeEvents()

	repos := store.NewRepositories(docs)
	txRunner := store.NewTxRunner(docs)

	if cfg.Seed.DemoData {
		if err := bootstrap.NewSeeder(txRunner, cfg.Admin.BcryptCost, log).Run(ctx); err != nil {
			log.Error().Err(err).Msg("siembra de datos de demostración")
		}
	}

	authUC := auth.NewAuthUseCase(repos.Users, sessions, txRunner, auth.Config{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Admin: auth.AdminCredential{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Name:     cfg.Admin.Name,
		},
		BcryptCost: cfg.Admin.BcryptCost,
	})

	aiUC := usecase.NewAIUseCase(newLLMService(cfg.AI, log), log)
	businessUC := usecase.NewBusinessUseCase(repos.Businesses, aiUC, events, log)
	auditUC := usecase.NewAuditUseCase(repos.AuditLogs)
	settingsUC := usecase.NewSettingsUseCase(repos.Settings, auditUC)
	adminUC := usecase.NewAdminUseCase(repos.Users, txRunner, auditUC, log)
	checkoutUC := usecase.NewCheckoutUseCase(repos.Businesses, repos.Orders, aiUC)
	posterUC := usecase.NewPosterUseCase(businessUC, infrapdf.NewMarotoPosterGenerator(), cfg.App.PublicBaseURL)
	dashboardUC := appanalytics.NewDashboardUseCase(businessUC, repos.Orders, settingsUC, cfg.App.PublicBaseURL)
	signupUC := onboarding.NewSignupUseCase(txRunner, authUC, businessUC, cfg.Admin.InviteCodes)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    12 * 1024 * 1024, // comprobantes en data URL
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en http://localhost:<port>/docs si existe el JSON generado.
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Storefront API",
		}))
	} else {
		log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SignupUC:    signupUC,
		BusinessUC:  businessUC,
		PosterUC:    posterUC,
		CheckoutUC:  checkoutUC,
		DashboardUC: dashboardUC,
		AdminUC:     adminUC,
		AuditUC:     auditUC,
		SettingsUC:  settingsUC,
		Logger:      log,
		ServiceName: cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openDocumentStore abre el almacén de registros configurado y devuelve su cierre.
func openDocumentStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store.DocumentStore, func()) {
	if cfg.Store.Driver != config.DriverPostgres {
		return memory.NewDocumentStore(), func() {}
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("esquema de documentos")
	}
	return postgres.NewDocumentStore(pool), pool.Close
}

// openSessionStore memoria o Redis según SESSION_DRIVER.
func openSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionRepository, func()) {
	if cfg.Session.Driver != config.DriverRedis {
		return memory.NewSessionStore(), func() {}
	}
	client := infraredis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
	}
	return infraredis.NewSessionStore(client), func() { _ = client.Close() }
}

// openEventPublisher NATS si NATS_URL está definido; si no, bus en proceso.
func openEventPublisher(cfg *config.Config, log *logger.Logger) (ports.EventPublisher, func()) {
	if cfg.NATS.URL == "" {
		bus := memory.NewEventBus()
		bus.Subscribe(ports.SubjectBusinessUpdated, func(_ context.Context, payload any) {
			if ev, ok := payload.(ports.BusinessUpdatedEvent); ok {
				log.Debug().Str("business_id", ev.BusinessID).Int64("version", ev.Version).Msg("negocio actualizado")
			}
		})
		return bus, func() {}
	}
	nc, err := messaging.Connect(cfg.NATS.URL, cfg.App.Name, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a NATS")
	}
	return messaging.NewNatsPublisher(nc), func() { _ = nc.Drain() }
}

// newLLMService elige el proveedor de IA. Sin API key el servicio responde ErrNoAPIKey
// y los casos de uso aplican los textos de respaldo.
func newLLMService(cfg config.AIConfig, log *logger.Logger) ports.LLMService {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Warn().Msg("ANTHROPIC_API_KEY vacío; IA en modo respaldo")
		}
		return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		if cfg.GeminiAPIKey == "" {
			log.Warn().Msg("GEMINI_API_KEY vacío; IA en modo respaldo")
		}
		return infraai.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
