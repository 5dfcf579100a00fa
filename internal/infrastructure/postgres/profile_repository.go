package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo perfiles (identidad -> empresa).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un perfil.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, company_id, full_name, role, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, p.ID, p.CompanyID, p.FullName, p.Role, p.CreatedAt); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID perfil de una identidad; (nil, nil) si no tiene.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `
		SELECT id, company_id, full_name, role, created_at
		FROM profiles WHERE id = $1`
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.CompanyID, &p.FullName, &p.Role, &p.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}
