package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/jhoicas/Tahsilat-api/internal/application/actions"
	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/application/validation"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// NoteActions lo implementa *actions.NoteUseCase.
type NoteActions interface {
	CreateNote(ctx context.Context, lang language.Tag, userID string, fields map[string]any) (dto.ActionResult, error)
}

// CustomerActions lo implementa *actions.CustomerUseCase.
type CustomerActions interface {
	SearchCustomers(ctx context.Context, query, companyID string) dto.SearchCustomersResult
	CustomerDetail(ctx context.Context, userID, customerID string) (*dto.CustomerDetailResponse, error)
}

// DemoLoginAction lo implementa *actions.DemoLoginUseCase.
type DemoLoginAction interface {
	LoginAsDemoUser(ctx context.Context, role string) (dto.LoginResult, *auth.Session)
}

// ActionHandler superficie de acciones invocada por la UI.
type ActionHandler struct {
	notes     NoteActions
	customers CustomerActions
	resolver  actions.TenantResolver
	demo      DemoLoginAction
	cookie    cookieConfig
	log       *logger.Logger
}

// NewActionHandler construye el handler.
func NewActionHandler(notes NoteActions, customers CustomerActions, resolver actions.TenantResolver, demo DemoLoginAction, cookie cookieConfig, log *logger.Logger) *ActionHandler {
	return &ActionHandler{notes: notes, customers: customers, resolver: resolver, demo: demo, cookie: cookie, log: log.Component("http.actions")}
}

// CreateNote godoc
// @Summary      Agregar nota a un cliente
// @Tags         actions
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.CreateNoteInput  true  "customerId, content"
// @Success      200   {object}  dto.ActionResult
// @Failure      400   {object}  dto.ActionResult
// @Failure      401   {object}  dto.ActionResult
// @Failure      403   {object}  dto.ActionResult
// @Failure      404   {object}  dto.ActionResult
// @Failure      500   {object}  dto.ActionResult
// @Router       /actions/notes [post]
func (h *ActionHandler) CreateNote(c *fiber.Ctx) error {
	l := lang(c)
	fields, err := formFields(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ActionResult{Error: i18n.T(l, i18n.MsgInvalidInput)})
	}
	res, err := h.notes.CreateNote(c.UserContext(), l, GetUserID(c), fields)
	return c.Status(statusFor(err)).JSON(res)
}

// SearchCustomers godoc
// @Summary      Buscar clientes con su deuda total
// @Tags         actions
// @Produce      json
// @Param        q    query  string  false  "Texto contenido en el nombre"
// @Success      200  {object}  dto.SearchCustomersResult
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /actions/customers/search [get]
func (h *ActionHandler) SearchCustomers(c *fiber.Ctx) error {
	tc, err := h.resolver.Resolve(c.UserContext(), GetUserID(c))
	if err != nil {
		var storeErr *domain.StoreError
		if errors.As(err, &storeErr) {
			h.log.Warn().Err(err).Msg("búsqueda sin tenant por fallo del store")
			return c.JSON(dto.SearchCustomersResult{Customers: []dto.CustomerSearchItem{}})
		}
		return authError(c, err)
	}
	// La empresa sale siempre de la sesión; no se acepta companyId del cliente.
	return c.JSON(h.customers.SearchCustomers(c.UserContext(), c.Query("q"), tc.CompanyID))
}

// DemoLogin godoc
// @Summary      Entrar como usuario demo
// @Tags         actions
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.DemoLoginInput  true  "role: admin | accounting | manager | seller"
// @Success      200   {object}  dto.LoginResult
// @Failure      400   {object}  dto.LoginResult
// @Failure      401   {object}  dto.LoginResult
// @Router       /actions/demo-login [post]
func (h *ActionHandler) DemoLogin(c *fiber.Ctx) error {
	var in dto.DemoLoginInput
	fields, err := formFields(c)
	if err == nil {
		err = validation.Decode(fields, &in)
	}
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.LoginResult{Error: domain.ErrInvalidRole.Error()})
	}

	res, session := h.demo.LoginAsDemoUser(c.UserContext(), in.Role)
	if !res.Success {
		status := fiber.StatusUnauthorized
		if res.Error == domain.ErrInvalidRole.Error() {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(res)
	}
	setSessionCookie(c, h.cookie, session.Token, session.ExpiresAt)
	// El navegador usa la cookie HTTP-only; el token no viaja en el cuerpo.
	res.Token = ""
	return c.JSON(res)
}

// authError responde 401/403/500 para errores de resolución de sesión.
func authError(c *fiber.Ctx, err error) error {
	l := lang(c)
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError(dto.CodeUnauthenticated, i18n.T(l, i18n.MsgUnauthenticated)))
	case errors.Is(err, domain.ErrProfileNotFound):
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError(dto.CodeProfileNotFound, i18n.T(l, i18n.MsgProfileNotFound)))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError(dto.CodeInternal, i18n.T(l, i18n.MsgInternal)))
	}
}
