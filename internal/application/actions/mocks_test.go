package actions

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/application/tenant"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

type mockResolver struct{ mock.Mock }

func (m *mockResolver) Resolve(ctx context.Context, userID string) (tenant.Context, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(tenant.Context), args.Error(1)
}

// mockTxRunner ejecuta fn con los repos mock; Err simula fallo al abrir la transacción.
type mockTxRunner struct {
	mock.Mock
	repos TenantRepos
}

func (m *mockTxRunner) RunTenant(ctx context.Context, companyID string, fn func(TenantRepos) error) error {
	args := m.Called(ctx, companyID)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m.repos)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	args := m.Called(ctx, companyID, id)
	c, _ := args.Get(0).(*entity.Customer)
	return c, args.Error(1)
}

func (m *mockCustomerRepo) SearchWithDebts(ctx context.Context, companyID, query string, limit int) ([]*entity.CustomerSummary, error) {
	args := m.Called(ctx, companyID, query, limit)
	rows, _ := args.Get(0).([]*entity.CustomerSummary)
	return rows, args.Error(1)
}

type mockDebtRepo struct{ mock.Mock }

func (m *mockDebtRepo) Create(ctx context.Context, d *entity.Debt) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDebtRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Debt, error) {
	args := m.Called(ctx, customerID)
	d, _ := args.Get(0).([]*entity.Debt)
	return d, args.Error(1)
}

type mockNoteRepo struct{ mock.Mock }

func (m *mockNoteRepo) Create(ctx context.Context, n *entity.Note) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockNoteRepo) ListByCustomer(ctx context.Context, companyID, customerID string, limit int) ([]*entity.Note, error) {
	args := m.Called(ctx, companyID, customerID, limit)
	n, _ := args.Get(0).([]*entity.Note)
	return n, args.Error(1)
}

type mockInvalidator struct{ mock.Mock }

func (m *mockInvalidator) Invalidate(ctx context.Context, viewKey string) error {
	return m.Called(ctx, viewKey).Error(0)
}

type mockSignIn struct{ mock.Mock }

func (m *mockSignIn) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*auth.Session)
	return s, args.Error(1)
}

type fixture struct {
	resolver  *mockResolver
	tx        *mockTxRunner
	customers *mockCustomerRepo
	debts     *mockDebtRepo
	notes     *mockNoteRepo
	inv       *mockInvalidator
}

func newFixture() *fixture {
	f := &fixture{
		resolver:  new(mockResolver),
		customers: new(mockCustomerRepo),
		debts:     new(mockDebtRepo),
		notes:     new(mockNoteRepo),
		inv:       new(mockInvalidator),
	}
	f.tx = &mockTxRunner{repos: TenantRepos{Customers: f.customers, Debts: f.debts, Notes: f.notes}}
	return f
}
