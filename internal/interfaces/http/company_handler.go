package http

import (
	"github.com/gofiber/fiber/v2"
)

// CompanyHandler datos públicos de la empresa del subdominio (nombre, logo, moneda).
type CompanyHandler struct{}

// NewCompanyHandler construye el handler.
func NewCompanyHandler() *CompanyHandler {
	return &CompanyHandler{}
}

// Current godoc
// @Summary      Empresa del subdominio actual
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/current [get]
func (h *CompanyHandler) Current(c *fiber.Ctx) error {
	return c.JSON(GetTenant(c))
}
