package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Tahsilat-api/internal/application/actions"
)

// Asegura que TxRunner implementa actions.TenantTxRunner.
var _ actions.TenantTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con la empresa fijada para RLS.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTenant inicia una transacción, fija app.current_company_id (local a la tx),
// ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunTenant(ctx context.Context, companyID string, fn func(actions.TenantRepos) error) error {
	if companyID == "" {
		return fmt.Errorf("run tenant: empty company id")
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT set_config('app.current_company_id', $1, true)`, companyID); err != nil {
		return fmt.Errorf("set tenant: %w", err)
	}

	repos := actions.TenantRepos{
		Customers: NewCustomerRepository(tx),
		Debts:     NewDebtRepository(tx),
		Notes:     NewNoteRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
