package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tahsilat-api/internal/application/actions"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Notes      NoteActions
	Customers  CustomerActions
	Resolver   actions.TenantResolver
	DemoLogin  DemoLoginAction
	AuthUC     PasswordLogin
	Companies  CompanyLookup
	JWTSecret  string
	BaseDomain string
	// SecureCookies marca la cookie de sesión como Secure (todo menos development).
	SecureCookies bool
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	cookie := cookieConfig{Secure: deps.SecureCookies}
	if deps.BaseDomain != "" && deps.BaseDomain != "localhost" {
		// Compartida entre subdominios: el demo entra por el dominio raíz.
		cookie.Domain = "." + deps.BaseDomain
	}
	session := SessionMiddleware(deps.JWTSecret)
	tenantHost := TenantHostMiddleware(deps.BaseDomain, deps.Companies)

	// Acciones (la sesión es opcional: cada acción reporta "no autenticado")
	actionsGroup := app.Group("/actions", session)
	actionHandler := NewActionHandler(deps.Notes, deps.Customers, deps.Resolver, deps.DemoLogin, cookie, deps.Log)
	actionsGroup.Post("/notes", actionHandler.CreateNote)
	actionsGroup.Get("/customers/search", actionHandler.SearchCustomers)
	actionsGroup.Post("/demo-login", actionHandler.DemoLogin)

	// Auth por subdominio
	authGroup := app.Group("/auth", tenantHost)
	authHandler := NewAuthHandler(deps.AuthUC, cookie, deps.Log)
	authGroup.Post("/login", RequireTenant(), authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	api := app.Group("/api")

	// Companies (público, resuelto por subdominio)
	companyHandler := NewCompanyHandler()
	api.Get("/companies/current", tenantHost, RequireTenant(), companyHandler.Current)

	// Rutas protegidas (requieren sesión)
	customers := api.Group("/customers", session, RequireSession())
	customerHandler := NewCustomerHandler(deps.Customers)
	customers.Get("/:id", customerHandler.GetByID)
}
