package http

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
)

// CompanyLookup es el contrato mínimo que necesita el middleware para resolver el subdominio.
// Lo implementa *usecase.CompanyUseCase.
type CompanyLookup interface {
	GetBySlug(ctx context.Context, slug string) (*dto.CompanyResponse, error)
}

// TenantHostMiddleware resuelve la empresa a partir de <slug>.<baseDomain> en el Host
// y la deja en c.Locals(LocalTenant).
//
// Comportamiento:
//   - Host sin subdominio (dominio raíz) → sigue sin tenant.
//   - 404 Not Found → slug desconocido.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
func TenantHostMiddleware(baseDomain string, lookup CompanyLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := tenantSlug(c.Hostname(), baseDomain)
		if slug == "" {
			return c.Next()
		}
		company, err := lookup.GetBySlug(c.UserContext(), slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Code:    dto.CodeTenantNotFound,
					Message: "no existe una empresa para el subdominio '" + slug + "'",
				})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    dto.CodeTenantCheckFailed,
				Message: "no se pudo resolver la empresa, intente más tarde",
			})
		}
		c.Locals(LocalTenant, company)
		return c.Next()
	}
}

// RequireTenant corta con 404 si la petición no llegó por el subdominio de una empresa.
// Debe usarse DESPUÉS de TenantHostMiddleware.
func RequireTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTenant(c) == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    dto.CodeTenantNotFound,
				Message: "acceda desde el subdominio de su empresa",
			})
		}
		return c.Next()
	}
}

// GetTenant empresa resuelta del subdominio, o nil.
func GetTenant(c *fiber.Ctx) *dto.CompanyResponse {
	company, _ := c.Locals(LocalTenant).(*dto.CompanyResponse)
	return company
}

// tenantSlug extrae el primer label de host si cuelga directamente de baseDomain.
func tenantSlug(host, baseDomain string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	suffix := "." + strings.ToLower(strings.TrimPrefix(baseDomain, "."))
	if baseDomain == "" || !strings.HasSuffix(host, suffix) {
		return ""
	}
	slug := strings.TrimSuffix(host, suffix)
	if slug == "" || slug == "www" || strings.Contains(slug, ".") {
		return ""
	}
	return slug
}
