package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/Storefront-api/internal/application/analytics"
	"github.com/jhoicas/Storefront-api/internal/application/auth"
	"github.com/jhoicas/Storefront-api/internal/application/onboarding"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
	"github.com/jhoicas/Storefront-api/internal/domain/entity"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SignupUC    *onboarding.SignupUseCase
	BusinessUC  *usecase.BusinessUseCase
	PosterUC    *usecase.PosterUseCase
	CheckoutUC  *usecase.CheckoutUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AdminUC     *usecase.AdminUseCase
	AuditUC     *usecase.AuditUseCase
	SettingsUC  *usecase.SettingsUseCase
	// Authenticator por defecto AuthUC; los tests pueden inyectar otro.
	Authenticator Authenticator
	Logger        *logger.Logger
	ServiceName   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	authn := deps.Authenticator
	if authn == nil {
		authn = deps.AuthUC
	}

	app.Use(RequestLogger(log), Metrics())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Invitaciones (público)
	invitationHandler := NewInvitationHandler(deps.SignupUC)
	api.Get("/invitations/:code", invitationHandler.Validate)
	api.Post("/invitations/:code/signup", invitationHandler.Signup)

	// Vitrina y checkout (público)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	api.Get("/storefront/:businessId", checkoutHandler.Storefront)
	api.Post("/storefront/:businessId/payment-proofs", checkoutHandler.SubmitProof)

	// Rutas protegidas (requieren Bearer Token y sesión viva)
	requireAuth := AuthMiddleware(authn)

	authGroup.Post("/logout", requireAuth, authHandler.Logout)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	business := api.Group("/business/me", requireAuth)
	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.PosterUC)
	business.Get("/", businessHandler.GetMine)
	business.Put("/", businessHandler.Update)
	business.Post("/products", businessHandler.AddProduct)
	business.Put("/products/:id", businessHandler.UpdateProduct)
	business.Delete("/products/:id", businessHandler.DeleteProduct)
	business.Post("/welcome-message", businessHandler.GenerateWelcome)
	business.Get("/poster", businessHandler.Poster)
	business.Get("/orders", checkoutHandler.ListOrders)
	business.Patch("/orders/:id", checkoutHandler.ReviewOrder)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.SettingsUC)
	api.Get("/dashboard", requireAuth, dashboardHandler.Get)
	api.Get("/billing/bank-details", requireAuth, dashboardHandler.BankDetails)

	// Administración (solo ADMIN)
	admin := api.Group("/admin", requireAuth, RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC, deps.AuditUC, deps.SettingsUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Patch("/users/:id/status", adminHandler.SetStatus)
	admin.Post("/users/:id/toggle", adminHandler.ToggleStatus)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/audit-logs", adminHandler.AuditLogs)
	admin.Get("/settings/bank", adminHandler.GetBankSettings)
	admin.Put("/settings/bank", adminHandler.SaveBankSettings)
}
