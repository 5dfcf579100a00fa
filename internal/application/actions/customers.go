package actions

import (
	"context"
	"strings"

	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/receivables"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// SearchLimit máximo de clientes devueltos por la búsqueda.
const SearchLimit = 10

// NotesPerCustomer máximo de notas en el detalle de cliente.
const NotesPerCustomer = 50

// CustomerUseCase lecturas de clientes (búsqueda y detalle). Las lecturas fallan en blando.
type CustomerUseCase struct {
	tx       TenantTxRunner
	resolver TenantResolver
	fallback string
	log      *logger.Logger
}

// NewCustomerUseCase construye el caso de uso. fallbackCurrency se usa para clientes sin deudas.
func NewCustomerUseCase(tx TenantTxRunner, resolver TenantResolver, fallbackCurrency string, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{tx: tx, resolver: resolver, fallback: fallbackCurrency, log: log.Component("customers")}
}

// SearchCustomers hasta SearchLimit clientes de companyID cuyo nombre contiene query.
// Ante cualquier error del store devuelve lista vacía.
func (uc *CustomerUseCase) SearchCustomers(ctx context.Context, query, companyID string) dto.SearchCustomersResult {
	out := dto.SearchCustomersResult{Customers: []dto.CustomerSearchItem{}}
	if companyID == "" {
		return out
	}

	var rows []*entity.CustomerSummary
	err := uc.tx.RunTenant(ctx, companyID, func(r TenantRepos) error {
		var err error
		rows, err = r.Customers.SearchWithDebts(ctx, companyID, strings.TrimSpace(query), SearchLimit)
		return err
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("company_id", companyID).Msg("búsqueda de clientes fallida")
		return out
	}

	for _, row := range rows {
		if len(out.Customers) == SearchLimit {
			break
		}
		if row == nil || row.CompanyID != companyID {
			continue
		}
		currency := uc.fallback
		if row.Currency != nil && *row.Currency != "" {
			currency = *row.Currency
		}
		out.Customers = append(out.Customers, dto.CustomerSearchItem{
			ID:        row.ID,
			Name:      row.Name,
			TotalDebt: row.TotalDebt.InexactFloat64(),
			Currency:  currency,
		})
	}
	return out
}

// CustomerDetail cliente de la empresa de la sesión con sus deudas y notas (más recientes primero).
// Un fallo al leer las notas devuelve notas vacías; el resto de errores se propagan.
func (uc *CustomerUseCase) CustomerDetail(ctx context.Context, userID, customerID string) (*dto.CustomerDetailResponse, error) {
	tc, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		customer *entity.Customer
		debts    []*entity.Debt
		notes    []*entity.Note
	)
	err = uc.tx.RunTenant(ctx, tc.CompanyID, func(r TenantRepos) error {
		var err error
		customer, err = r.Customers.GetByID(ctx, tc.CompanyID, customerID)
		if err != nil {
			return domain.NewStoreError("get customer", err)
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		debts, err = r.Debts.ListByCustomer(ctx, customerID)
		if err != nil {
			return domain.NewStoreError("list debts", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// transacción propia: una consulta fallida aborta la tx en curso
	err = uc.tx.RunTenant(ctx, tc.CompanyID, func(r TenantRepos) error {
		var err error
		notes, err = r.Notes.ListByCustomer(ctx, tc.CompanyID, customerID, NotesPerCustomer)
		return err
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("customer_id", customerID).Msg("lectura de notas fallida")
		notes = nil
	}

	total, currency := receivables.Summarize(debts, uc.fallback)
	resp := &dto.CustomerDetailResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		TotalDebt: total.InexactFloat64(),
		Currency:  currency,
		Debts:     make([]dto.DebtResponse, 0, len(debts)),
		Notes:     make([]dto.NoteResponse, 0, len(notes)),
	}
	for _, d := range debts {
		resp.Debts = append(resp.Debts, dto.DebtResponse{
			ID:              d.ID,
			RemainingAmount: d.RemainingAmount.InexactFloat64(),
			Currency:        d.Currency,
			CreatedAt:       d.CreatedAt,
		})
	}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, dto.NoteResponse{
			ID:         n.ID,
			CustomerID: n.CustomerID,
			Content:    n.Content,
			CreatedBy:  n.CreatedBy,
			CreatedAt:  n.CreatedAt,
		})
	}
	return resp, nil
}
