package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
)

// AdminHandler consola de administración: usuarios, bitácora y monetización.
type AdminHandler struct {
	admin    *usecase.AdminUseCase
	audit    *usecase.AuditUseCase
	settings *usecase.SettingsUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(admin *usecase.AdminUseCase, audit *usecase.AuditUseCase, settings *usecase.SettingsUseCase) *AdminHandler {
	return &AdminHandler{admin: admin, audit: audit, settings: settings}
}

// ListUsers godoc
// @Summary      Listar cuentas
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (0 = todos)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.AdminUserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, ok, err := bindPage(c)
	if !ok {
		return err
	}
	out, err := h.admin.ListUsers(c.UserContext(), CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendPage(c, out, page)
}

// SetStatus godoc
// @Summary      Activar o deshabilitar una cuenta
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "id del usuario"
// @Param        body  body  dto.SetStatusRequest  true  "ACTIVE | DISABLED"
// @Success      200  {object}  dto.AdminUserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/status [patch]
func (h *AdminHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.admin.SetStatus(c.UserContext(), CurrentUser(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ToggleStatus godoc
// @Summary      Alternar ACTIVE/DISABLED
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "id del usuario"
// @Success      200  {object}  dto.AdminUserResponse
// @Router       /api/admin/users/{id}/toggle [post]
func (h *AdminHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.admin.ToggleStatus(c.UserContext(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteUser godoc
// @Summary      Eliminar una cuenta
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "id del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.admin.DeleteUser(c.UserContext(), CurrentUser(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AuditLogs godoc
// @Summary      Bitácora de auditoría (más reciente primero)
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página (0 = todos)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /api/admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c *fiber.Ctx) error {
	page, ok, err := bindPage(c)
	if !ok {
		return err
	}
	out, err := h.audit.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendPage(c, out, page)
}

// GetBankSettings godoc
// @Summary      Datos bancarios de monetización
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.BankDetailsDTO
// @Router       /api/admin/settings/bank [get]
func (h *AdminHandler) GetBankSettings(c *fiber.Ctx) error {
	out, err := h.settings.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveBankSettings godoc
// @Summary      Guardar datos bancarios de monetización
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BankDetailsDTO  true  "datos bancarios"
// @Success      200  {object}  dto.BankDetailsDTO
// @Router       /api/admin/settings/bank [put]
func (h *AdminHandler) SaveBankSettings(c *fiber.Ctx) error {
	var in dto.BankDetailsDTO
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.settings.Save(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// sendPage responde la página pedida y el total en X-Total-Count.
func sendPage[T any](c *fiber.Ctx, items []T, page dto.PageRequest) error {
	start, end := page.Bounds(len(items))
	c.Set("X-Total-Count", strconv.Itoa(len(items)))
	return c.JSON(items[start:end])
}
