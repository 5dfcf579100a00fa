package actions

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/pkg/config"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// DemoLoginUseCase login con los usuarios demo preprovisionados, uno por rol.
type DemoLoginUseCase struct {
	signIn PasswordSignIn
	creds  map[string]config.Credential
	inv    Invalidator
	log    *logger.Logger
}

// NewDemoLoginUseCase construye el caso de uso con las credenciales demo por rol.
func NewDemoLoginUseCase(signIn PasswordSignIn, demo config.DemoConfig, inv Invalidator, log *logger.Logger) *DemoLoginUseCase {
	return &DemoLoginUseCase{signIn: signIn, creds: demo.Users, inv: inv, log: log.Component("demo_login")}
}

// LoginAsDemoUser mapea role a su par de credenciales e inicia sesión por contraseña.
// Rol fuera de la lista cerrada: {false, "Invalid role"} sin intentar el login.
func (uc *DemoLoginUseCase) LoginAsDemoUser(ctx context.Context, role string) (dto.LoginResult, *auth.Session) {
	cred, ok := uc.creds[role]
	if !entity.IsValidRole(role) || !ok {
		return dto.LoginResult{Success: false, Error: domain.ErrInvalidRole.Error()}, nil
	}

	session, err := uc.signIn.SignInWithPassword(ctx, cred.Email, cred.Password)
	if err != nil {
		uc.log.Warn().Err(err).Str("role", role).Msg("login demo fallido")
		return dto.LoginResult{Success: false, Error: err.Error()}, nil
	}

	if err := uc.inv.Invalidate(ctx, RootViewPath); err != nil {
		uc.log.Warn().Err(err).Msg("revalidación de vista fallida")
	}
	return dto.LoginResult{Success: true, Token: session.Token}, session
}
