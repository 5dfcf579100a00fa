package actions

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/application/tenant"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

// TenantRepos repositorios atados a una transacción con la empresa fijada para RLS.
type TenantRepos struct {
	Customers repository.CustomerRepository
	Debts     repository.DebtRepository
	Notes     repository.NoteRepository
}

// TenantTxRunner ejecuta fn dentro de una transacción en la que el store solo ve filas de companyID.
// Si fn retorna error se hace rollback.
type TenantTxRunner interface {
	RunTenant(ctx context.Context, companyID string, fn func(repos TenantRepos) error) error
}

// TenantResolver resuelve la empresa de la sesión (implementado por *tenant.Resolver).
type TenantResolver interface {
	Resolve(ctx context.Context, userID string) (tenant.Context, error)
}

// Invalidator avisa a la capa de presentación que descarte la vista cacheada de viewKey.
type Invalidator interface {
	Invalidate(ctx context.Context, viewKey string) error
}

// PasswordSignIn login por contraseña (implementado por *auth.AuthUseCase).
type PasswordSignIn interface {
	SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error)
}

// Rutas de vistas que se invalidan tras una escritura.
const RootViewPath = "/"

// CustomerViewPath vista de detalle de un cliente.
func CustomerViewPath(customerID string) string {
	return "/customers/" + customerID
}
