package repository

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

// NoteRepository puerto para notas. Solo alta y lectura: las notas son inmutables.
type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	ListByCustomer(ctx context.Context, companyID, customerID string, limit int) ([]*entity.Note, error)
}
