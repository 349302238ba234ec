package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Storefront-api/internal/application/dto"
	"github.com/jhoicas/Storefront-api/internal/application/usecase"
)

// CheckoutHandler vitrina pública, comprobantes de pago y pedidos del dueño.
type CheckoutHandler struct {
	uc *usecase.CheckoutUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Storefront godoc
// @Summary      Vista pública del negocio
// @Tags         checkout
// @Produce      json
// @Param        businessId  path  string  true  "id del negocio"
// @Success      200  {object}  dto.StorefrontResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storefront/{businessId} [get]
func (h *CheckoutHandler) Storefront(c *fiber.Ctx) error {
	out, err := h.uc.GetStorefront(c.UserContext(), c.Params("businessId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubmitProof godoc
// @Summary      Subir comprobante de pago
// @Description  El comprobante se verifica con IA; el pedido queda PENDING hasta que el dueño lo revise.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        businessId  path  string                   true  "id del negocio"
// @Param        body        body  dto.PaymentProofRequest  true  "comprobante"
// @Success      201  {object}  dto.PaymentProofResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/storefront/{businessId}/payment-proofs [post]
func (h *CheckoutHandler) SubmitProof(c *fiber.Ctx) error {
	var in dto.PaymentProofRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.SubmitPaymentProof(c.UserContext(), c.Params("businessId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOrders godoc
// @Summary      Pedidos del negocio del usuario
// @Tags         checkout
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/business/me/orders [get]
func (h *CheckoutHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.UserContext(), CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReviewOrder godoc
// @Summary      Confirmar o rechazar un pedido
// @Tags         checkout
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "id del pedido"
// @Param        body  body  dto.ReviewOrderRequest  true  "CONFIRMED | REJECTED"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/me/orders/{id} [patch]
func (h *CheckoutHandler) ReviewOrder(c *fiber.Ctx) error {
	var in dto.ReviewOrderRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.ReviewOrder(c.UserContext(), CurrentUser(c), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
