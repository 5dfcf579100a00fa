package repository

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las lecturas van filtradas por companyID.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
	// SearchWithDebts busca por nombre (ILIKE) y agrega el total de deudas por cliente.
	SearchWithDebts(ctx context.Context, companyID, query string, limit int) ([]*entity.CustomerSummary, error)
}
