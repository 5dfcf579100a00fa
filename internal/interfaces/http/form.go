package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
)

// lang idioma de la respuesta según Accept-Language (turco por defecto).
func lang(c *fiber.Ctx) language.Tag {
	return i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
}

// formFields lee el cuerpo como campos sueltos: JSON, multipart o x-www-form-urlencoded.
// La conversión de tipos y la validación quedan para la capa de validación.
func formFields(c *fiber.Ctx) (map[string]any, error) {
	fields := map[string]any{}
	ct := strings.ToLower(c.Get(fiber.HeaderContentType))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEApplicationJSON):
		if len(c.Body()) == 0 {
			return fields, nil
		}
		if err := c.BodyParser(&fields); err != nil {
			return nil, err
		}
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for k, v := range form.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
	default:
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			fields[string(k)] = string(v)
		})
	}
	return fields, nil
}

// statusFor código HTTP para un error de acción.
func statusFor(err error) int {
	var verr *domain.ValidationError
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &verr), errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// cookieConfig atributos de la cookie de sesión.
type cookieConfig struct {
	Secure bool
	Domain string // vacío = host actual; ".<baseDomain>" para compartir entre subdominios
}

func setSessionCookie(c *fiber.Ctx, cfg cookieConfig, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  expires,
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg cookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   cfg.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		Secure:   cfg.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
