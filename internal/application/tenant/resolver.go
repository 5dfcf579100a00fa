// Package tenant resuelve la empresa activa a partir de la sesión (lookup del perfil).
package tenant

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

// Context identidad autenticada y la empresa a la que está ligada.
// CompanyID es la única fuente válida para filtrar escrituras.
type Context struct {
	UserID    string
	CompanyID string
	Role      string
}

// Resolver obtiene el Context de una identidad.
type Resolver struct {
	profiles repository.ProfileRepository
}

// NewResolver construye el resolver sobre el repositorio de perfiles.
func NewResolver(profiles repository.ProfileRepository) *Resolver {
	return &Resolver{profiles: profiles}
}

// Resolve devuelve ErrUnauthenticated si no hay sesión y ErrProfileNotFound si la identidad
// no tiene perfil. Los fallos del store vuelven como *domain.StoreError.
func (r *Resolver) Resolve(ctx context.Context, userID string) (Context, error) {
	if userID == "" {
		return Context{}, domain.ErrUnauthenticated
	}
	profile, err := r.profiles.GetByID(ctx, userID)
	if err != nil {
		return Context{}, domain.NewStoreError("get profile", err)
	}
	if profile == nil || profile.CompanyID == "" {
		return Context{}, domain.ErrProfileNotFound
	}
	return Context{UserID: profile.ID, CompanyID: profile.CompanyID, Role: profile.Role}, nil
}
