package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo notas de clientes (solo insert y select).
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador.
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

// Create persiste una nota.
func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	query := `
		INSERT INTO notes (id, company_id, customer_id, content, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, n.ID, n.CompanyID, n.CustomerID, n.Content, n.CreatedBy, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// ListByCustomer últimas notas del cliente, más recientes primero.
func (r *NoteRepo) ListByCustomer(ctx context.Context, companyID, customerID string, limit int) ([]*entity.Note, error) {
	query := `
		SELECT id, company_id, customer_id, content, created_by, created_at
		FROM notes
		WHERE company_id = $1 AND customer_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.CompanyID, &n.CustomerID, &n.Content, &n.CreatedBy, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
