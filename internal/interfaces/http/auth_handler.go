package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/application/validation"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// PasswordLogin lo implementa *auth.AuthUseCase.
type PasswordLogin interface {
	SignInToCompany(ctx context.Context, companyID, email, password string) (*auth.Session, error)
}

// AuthHandler login por contraseña en el subdominio de la empresa y logout.
type AuthHandler struct {
	uc     PasswordLogin
	cookie cookieConfig
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc PasswordLogin, cookie cookieConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log.Component("http.auth")}
}

// Login godoc
// @Summary      Iniciar sesión en la empresa del subdominio
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResult
// @Failure      400   {object}  dto.LoginResult
// @Failure      401   {object}  dto.LoginResult
// @Failure      403   {object}  dto.LoginResult
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	l := lang(c)
	var in dto.LoginRequest
	fields, err := formFields(c)
	if err == nil {
		err = validation.Decode(fields, &in)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginResult{Error: i18n.T(l, i18n.MsgInvalidInput)})
	}

	company := GetTenant(c)
	session, err := h.uc.SignInToCompany(c.UserContext(), company.ID, in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.LoginResult{Error: err.Error()})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.LoginResult{Error: i18n.T(l, i18n.MsgTenantMismatch)})
		case errors.Is(err, domain.ErrProfileNotFound):
			return c.Status(fiber.StatusForbidden).JSON(dto.LoginResult{Error: i18n.T(l, i18n.MsgProfileNotFound)})
		default:
			h.log.Error().Err(err).Str("company_id", company.ID).Msg("login fallido")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.LoginResult{Error: i18n.T(l, i18n.MsgInternal)})
		}
	}

	setSessionCookie(c, h.cookie, session.Token, session.ExpiresAt)
	return c.JSON(dto.LoginResult{Success: true, Token: session.Token})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginResult
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c, h.cookie)
	return c.JSON(dto.LoginResult{Success: true})
}
