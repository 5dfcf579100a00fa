package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
	"github.com/jhoicas/Tahsilat-api/pkg/jwt"
)

// SessionCookie nombre de la cookie HTTP-only con el JWT de sesión.
const SessionCookie = "session"

// Locals keys en Fiber.
const (
	LocalUserID = "user_id"
	LocalTenant = "tenant"
)

// SessionMiddleware lee el JWT de la cookie de sesión o de Authorization: Bearer y deja
// el UserID en c.Locals. No bloquea: sin token (o con token inválido) la petición sigue
// sin usuario y cada acción responde "no autenticado" a su manera.
func SessionMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return c.Next()
		}
		userID, err := jwt.Parse(jwtSecret, token)
		if err == nil {
			c.Locals(LocalUserID, userID)
		}
		return c.Next()
	}
}

// RequireSession corta con 401 si SessionMiddleware no dejó usuario.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    dto.CodeUnauthenticated,
				Message: i18n.T(lang(c), i18n.MsgUnauthenticated),
			})
		}
		return c.Next()
	}
}

func sessionToken(c *fiber.Ctx) string {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.Cookies(SessionCookie)
}

// GetUserID devuelve el UserID del contexto (después de SessionMiddleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
