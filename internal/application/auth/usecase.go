package auth

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
	"github.com/jhoicas/Tahsilat-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Session sesión emitida tras un login correcto.
type Session struct {
	Token     string
	UserID    string
	CompanyID string
	Role      string
	ExpiresAt time.Time
}

// AuthUseCase login por contraseña contra la tabla users + perfiles.
type AuthUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, profiles repository.ProfileRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, profiles: profiles, jwtCfg: jwtCfg, now: time.Now}
}

// SignInWithPassword verifica email/password y emite un JWT de sesión.
// Email desconocido y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewStoreError("get user", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	profile, err := uc.profiles.GetByID(ctx, user.ID)
	if err != nil {
		return nil, domain.NewStoreError("get profile", err)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		UserID:    user.ID,
		CompanyID: profile.CompanyID,
		Role:      profile.Role,
		ExpiresAt: uc.now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}, nil
}

// SignInToCompany igual que SignInWithPassword pero exige que el perfil pertenezca a companyID
// (login por subdominio). Devuelve ErrForbidden si es de otra empresa.
func (uc *AuthUseCase) SignInToCompany(ctx context.Context, companyID, email, password string) (*Session, error) {
	session, err := uc.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if session.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return session, nil
}

// HashPassword genera el hash bcrypt para persistir en users.password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
