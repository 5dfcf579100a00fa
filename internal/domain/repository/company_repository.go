package repository

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetBySlug devuelve (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetBySlug(ctx context.Context, slug string) (*entity.Company, error)
}
