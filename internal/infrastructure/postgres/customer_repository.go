package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

// Asegura que CustomerRepo implementa repository.CustomerRepository.
var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. q puede ser el pool o una pgx.Tx.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, company_id, name, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(ctx, query, c.ID, c.CompanyID, c.Name, c.CreatedAt); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente de la empresa; (nil, nil) si no existe o es de otra empresa.
func (r *CustomerRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_id, name, created_at
		FROM customers WHERE id = $1 AND company_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, companyID).Scan(&c.ID, &c.CompanyID, &c.Name, &c.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// SearchWithDebts busca clientes cuyo nombre contiene query y suma sus saldos.
// La moneda es la de la primera deuda registrada; NULL si no hay deudas.
func (r *CustomerRepo) SearchWithDebts(ctx context.Context, companyID, query string, limit int) ([]*entity.CustomerSummary, error) {
	sql := `
		SELECT c.id, c.company_id, c.name,
		       COALESCE(SUM(d.remaining_amount), 0) AS total_debt,
		       (SELECT d2.currency FROM debts d2
		         WHERE d2.customer_id = c.id
		         ORDER BY d2.created_at, d2.id LIMIT 1) AS currency
		FROM customers c
		LEFT JOIN debts d ON d.customer_id = c.id
		WHERE c.company_id = $1 AND c.name ILIKE $2 ESCAPE '\'
		GROUP BY c.id, c.company_id, c.name
		ORDER BY c.name, c.id
		LIMIT $3`
	rows, err := r.q.Query(ctx, sql, companyID, likePattern(query), limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.CustomerSummary
	for rows.Next() {
		var s entity.CustomerSummary
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.TotalDebt, &s.Currency); err != nil {
			return nil, fmt.Errorf("scan customer summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
