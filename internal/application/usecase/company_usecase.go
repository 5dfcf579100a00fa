package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
)

// slugPattern etiqueta DNS válida: el slug se usa como subdominio.
var slugPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// CreateCompanyInput datos de alta de una empresa (provisión).
type CreateCompanyInput struct {
	Name         string
	Slug         string
	BaseCurrency string
	Timezone     string
	LogoURL      *string
}

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create da de alta una empresa. Devuelve domain.ErrDuplicate si el slug ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in CreateCompanyInput) (*entity.Company, error) {
	slug := strings.ToLower(strings.TrimSpace(in.Slug))
	if strings.TrimSpace(in.Name) == "" || !slugPattern.MatchString(slug) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	currency := strings.ToUpper(strings.TrimSpace(in.BaseCurrency))
	if currency == "" {
		currency = "TRY"
	}
	tz := in.Timezone
	if tz == "" {
		tz = "Europe/Istanbul"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Slug:         slug,
		BaseCurrency: currency,
		Timezone:     tz,
		LogoURL:      in.LogoURL,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetBySlug obtiene la empresa de un subdominio. ErrNotFound si no existe.
func (uc *CompanyUseCase) GetBySlug(ctx context.Context, slug string) (*dto.CompanyResponse, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !slugPattern.MatchString(slug) {
		return nil, domain.ErrNotFound
	}
	company, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		BaseCurrency: c.BaseCurrency,
		Timezone:     c.Timezone,
		LogoURL:      c.LogoURL,
		CreatedAt:    c.CreatedAt,
	}
}
