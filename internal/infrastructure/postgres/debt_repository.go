package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

var _ repository.DebtRepository = (*DebtRepo)(nil)

// DebtRepo deudas de clientes. El aislamiento por empresa viene de la política RLS
// sobre debts (join con customers).
type DebtRepo struct {
	q Querier
}

// NewDebtRepository construye el adaptador.
func NewDebtRepository(q Querier) *DebtRepo {
	return &DebtRepo{q: q}
}

// Create persiste una deuda.
func (r *DebtRepo) Create(ctx context.Context, d *entity.Debt) error {
	query := `
		INSERT INTO debts (id, customer_id, remaining_amount, currency, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.q.Exec(ctx, query, d.ID, d.CustomerID, d.RemainingAmount, d.Currency, d.CreatedAt); err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}
	return nil
}

// ListByCustomer deudas del cliente en orden de alta.
func (r *DebtRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Debt, error) {
	query := `
		SELECT id, customer_id, remaining_amount, currency, created_at
		FROM debts WHERE customer_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Debt
	for rows.Next() {
		var d entity.Debt
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.RemainingAmount, &d.Currency, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
