package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
)

// CustomerHandler lectura del detalle de cliente (protegido por sesión).
type CustomerHandler struct {
	uc CustomerActions
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc CustomerActions) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// GetByID godoc
// @Summary      Detalle de cliente con deudas y notas
// @Tags         customers
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	l := lang(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError(dto.CodeValidation, i18n.T(l, i18n.MsgCustomerIDInvalid)))
	}
	out, err := h.uc.CustomerDetail(c.UserContext(), GetUserID(c), id.String())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewError(dto.CodeNotFound, i18n.T(l, i18n.MsgCustomerNotFound)))
		}
		return authError(c, err)
	}
	return c.JSON(out)
}
