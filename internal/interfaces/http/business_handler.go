package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
)

// BusinessHandler perfil de tienda del usuario autenticado.
type BusinessHandler struct {
	uc     *usecase.BusinessUseCase
	poster *usecase.PosterUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase, poster *usecase.PosterUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc, poster: poster}
}

// GetMine godoc
// @Summary      Negocio del usuario (o perfil por defecto sin guardar)
// @Tags         business
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/business/me [get]
func (h *BusinessHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetOrDefaultForOwner(c.UserContext(), CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar el perfil completo del negocio
// @Tags         business
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateBusinessRequest  true  "perfil completo con version"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/business/me [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Agregar producto al catálogo
// @Tags         business
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductDTO  true  "producto"
// @Success      201  {object}  dto.BusinessResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/business/me/products [post]
func (h *BusinessHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.ProductDTO
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddProduct(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateProduct godoc
// @Summary      Editar producto del catálogo
// @Tags         business
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "id del producto"
// @Param        body  body  dto.ProductDTO  true  "producto"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/me/products/{id} [put]
func (h *BusinessHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.ProductDTO
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateProduct(c.UserContext(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteProduct godoc
// @Summary      Quitar producto del catálogo
// @Tags         business
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.BusinessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/me/products/{id} [delete]
func (h *BusinessHandler) DeleteProduct(c *fiber.Ctx) error {
	out, err := h.uc.DeleteProduct(c.UserContext(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GenerateWelcome godoc
// @Summary      Generar mensaje de bienvenida con IA y guardarlo
// @Tags         business
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.WelcomeMessageResponse
// @Router       /api/business/me/welcome-message [post]
func (h *BusinessHandler) GenerateWelcome(c *fiber.Ctx) error {
	out, err := h.uc.GenerateWelcomeMessage(c.UserContext(), CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Poster godoc
// @Summary      Descargar afiche PDF con los QR de la tienda
// @Tags         business
// @Security     BearerAuth
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/business/me/poster [get]
func (h *BusinessHandler) Poster(c *fiber.Ctx) error {
	pdf, filename, err := h.poster.Download(c.UserContext(), CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
