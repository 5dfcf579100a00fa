package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

// ProvisionUserInput alta de identidad + perfil en una empresa.
type ProvisionUserInput struct {
	CompanyID string
	Email     string
	Password  string
	FullName  string
	Role      string
}

// UserUseCase provisión de usuarios: identidad de login y su perfil (empresa + rol).
type UserUseCase struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, profiles repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{users: users, profiles: profiles}
}

// Provision crea el usuario y su perfil. Si el email ya existe devuelve el perfil existente
// sin tocarlo (idempotente para el seed) o ErrEmailAlreadyExists si pertenece a otra empresa.
func (uc *UserUseCase) Provision(ctx context.Context, in ProvisionUserInput) (*entity.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 || in.CompanyID == "" || !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		profile, err := uc.profiles.GetByID(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		if profile == nil || profile.CompanyID != in.CompanyID {
			return nil, domain.ErrEmailAlreadyExists
		}
		return profile, nil
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		name = email
	}
	profile := &entity.Profile{
		ID:        user.ID,
		CompanyID: in.CompanyID,
		FullName:  name,
		Role:      in.Role,
		CreatedAt: now,
	}
	if err := uc.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
