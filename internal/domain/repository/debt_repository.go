package repository

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

// DebtRepository puerto para deudas de clientes.
type DebtRepository interface {
	Create(ctx context.Context, debt *entity.Debt) error
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Debt, error)
}
