package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/onboarding"
)

// InvitationHandler alta de dueños por código de invitación.
type InvitationHandler struct {
	uc *onboarding.SignupUseCase
}

// NewInvitationHandler construye el handler.
func NewInvitationHandler(uc *onboarding.SignupUseCase) *InvitationHandler {
	return &InvitationHandler{uc: uc}
}

// Validate godoc
// @Summary      Validar código de invitación
// @Tags         onboarding
// @Produce      json
// @Param        code  path  string  true  "código de invitación"
// @Success      200  {object}  dto.InvitationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invitations/{code} [get]
func (h *InvitationHandler) Validate(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.uc.ValidateInvitation(code); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.InvitationResponse{Code: code, Valid: true})
}

// Signup godoc
// @Summary      Registrar dueño y negocio con invitación
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        code  path  string             true  "código de invitación"
// @Param        body  body  dto.SignupRequest  true  "cuenta + negocio"
// @Success      201  {object}  dto.SignupResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invitations/{code}/signup [post]
func (h *InvitationHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Signup(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
