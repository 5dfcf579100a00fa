package repository

import (
	"context"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

// ProfileRepository puerto para perfiles (identidad -> empresa).
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}
