package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Storefront-api/internal/application/analytics"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
)

// DashboardHandler panel del dueño y datos de facturación de la plataforma.
type DashboardHandler struct {
	uc       *appanalytics.DashboardUseCase
	settings *usecase.SettingsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, settings *usecase.SettingsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, settings: settings}
}

// Get godoc
// @Summary      Resumen del panel: negocio, pedidos y facturación
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// BankDetails godoc
// @Summary      Datos bancarios de la plataforma para pagar la suscripción
// @Description  204 si la plataforma los tiene ocultos.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.BankDetailsDTO
// @Success      204
// @Router       /api/billing/bank-details [get]
func (h *DashboardHandler) BankDetails(c *fiber.Ctx) error {
	out, err := h.settings.GetVisible(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}
