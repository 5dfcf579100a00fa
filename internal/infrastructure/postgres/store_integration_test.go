package postgres

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Tahsilat-api/internal/application/actions"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/pkg/config"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// testStore base migrada con dos empresas. admin es superusuario (ignora RLS);
// app es un rol sin privilegios sujeto a las políticas, como la API.
type testStore struct {
	admin *pgxpool.Pool
	app   *pgxpool.Pool

	companyA, companyB string
	profileA           string

	alfa, beta, tekstil, xTekstil string // empresa A
	foreign                       string // empresa B
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()
	if testing.Short() {
		t.Skip("requiere Docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("tahsilat_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("admin123"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := NewMigrator(config.StoreConfig{URL: dsn, ServiceKey: "admin123"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	require.NoError(t, m.Close())

	s := &testStore{}
	s.admin, err = open(ctx, dsn, "", 2)
	require.NoError(t, err)
	t.Cleanup(s.admin.Close)

	_, err = s.admin.Exec(ctx, `
		CREATE ROLE tahsilat_app LOGIN PASSWORD 'app123';
		GRANT SELECT, INSERT ON ALL TABLES IN SCHEMA public TO tahsilat_app`)
	require.NoError(t, err)

	appURL, err := url.Parse(dsn)
	require.NoError(t, err)
	appURL.User = url.UserPassword("tahsilat_app", "app123")
	s.app, err = open(ctx, appURL.String(), "", 4)
	require.NoError(t, err)
	t.Cleanup(s.app.Close)

	s.seed(t)
	return s
}

func (s *testStore) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC)

	companies := NewCompanyRepository(s.admin)
	s.companyA, s.companyB = uuid.NewString(), uuid.NewString()
	require.NoError(t, companies.Create(ctx, &entity.Company{ID: s.companyA, Name: "A", Slug: "a", BaseCurrency: "TRY", Timezone: "Europe/Istanbul", CreatedAt: now}))
	require.NoError(t, companies.Create(ctx, &entity.Company{ID: s.companyB, Name: "B", Slug: "b", BaseCurrency: "TRY", Timezone: "Europe/Istanbul", CreatedAt: now}))

	s.profileA = uuid.NewString()
	require.NoError(t, NewUserRepository(s.admin).Create(ctx, &entity.User{ID: s.profileA, Email: "a@a.test", PasswordHash: "x", CreatedAt: now}))
	require.NoError(t, NewProfileRepository(s.admin).Create(ctx, &entity.Profile{ID: s.profileA, CompanyID: s.companyA, Role: entity.RoleSeller, CreatedAt: now}))

	customers := NewCustomerRepository(s.admin)
	add := func(companyID, name string) string {
		id := uuid.NewString()
		require.NoError(t, customers.Create(ctx, &entity.Customer{ID: id, CompanyID: companyID, Name: name, CreatedAt: now}))
		return id
	}
	s.alfa = add(s.companyA, "AcmeAlfa")
	s.beta = add(s.companyA, "AcmeBeta")
	s.tekstil = add(s.companyA, "Acme_Tekstil")
	s.xTekstil = add(s.companyA, "AcmeXTekstil")
	s.foreign = add(s.companyB, "AcmeB2B")

	debts := NewDebtRepository(s.admin)
	addDebt := func(customerID, amount, currency string, at time.Time) {
		d, err := entity.NewDebt(uuid.NewString(), customerID, decimal.RequireFromString(amount), currency, at)
		require.NoError(t, err)
		require.NoError(t, debts.Create(ctx, d))
	}
	addDebt(s.alfa, "49.75", "TRY", now.Add(time.Hour))
	addDebt(s.alfa, "100.25", "EUR", now)
	addDebt(s.beta, "10", "USD", now)
	addDebt(s.xTekstil, "5", "TRY", now)
	addDebt(s.foreign, "999", "TRY", now)
}

// inTenant ejecuta fn en una transacción del rol de aplicación fijada a companyID.
func (s *testStore) inTenant(t *testing.T, companyID string, fn func(actions.TenantRepos) error) error {
	t.Helper()
	return NewTxRunner(s.app).RunTenant(context.Background(), companyID, fn)
}

func (s *testStore) search(t *testing.T, companyID, query string, limit int) []*entity.CustomerSummary {
	t.Helper()
	var list []*entity.CustomerSummary
	require.NoError(t, s.inTenant(t, companyID, func(r actions.TenantRepos) error {
		var err error
		list, err = r.Customers.SearchWithDebts(context.Background(), companyID, query, limit)
		return err
	}))
	return list
}

func names(list []*entity.CustomerSummary) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestStore_SearchWithDebts(t *testing.T) {
	s := newTestStore(t)

	t.Run("subcadena sin distinguir mayúsculas", func(t *testing.T) {
		list := s.search(t, s.companyA, "ACME", 10)
		assert.ElementsMatch(t, []string{"AcmeAlfa", "AcmeBeta", "Acme_Tekstil", "AcmeXTekstil"}, names(list))
	})

	t.Run("comodines del usuario literales", func(t *testing.T) {
		assert.Equal(t, []string{"Acme_Tekstil"}, names(s.search(t, s.companyA, "E_t", 10)))
		assert.Empty(t, s.search(t, s.companyA, "%", 10))
	})

	t.Run("total y moneda de la primera deuda", func(t *testing.T) {
		list := s.search(t, s.companyA, "acmealfa", 10)
		require.Len(t, list, 1)
		assert.True(t, list[0].TotalDebt.Equal(decimal.NewFromInt(150)), list[0].TotalDebt.String())
		require.NotNil(t, list[0].Currency)
		assert.Equal(t, "EUR", *list[0].Currency)
	})

	t.Run("cliente sin deudas", func(t *testing.T) {
		list := s.search(t, s.companyA, "acme_tekstil", 10)
		require.Len(t, list, 1)
		assert.True(t, list[0].TotalDebt.IsZero())
		assert.Nil(t, list[0].Currency)
	})

	t.Run("límite y orden por nombre", func(t *testing.T) {
		assert.Equal(t, []string{"AcmeAlfa", "AcmeBeta"}, names(s.search(t, s.companyA, "acme", 2)))
	})
}

func TestStore_RLSAislaEmpresas(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("sin empresa fijada no hay filas visibles", func(t *testing.T) {
		var n int
		require.NoError(t, s.app.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&n))
		assert.Zero(t, n)
	})

	t.Run("filtro explícito de otra empresa no atraviesa la política", func(t *testing.T) {
		assert.Empty(t, s.search(t, s.companyA, "b2b", 10))
		var list []*entity.CustomerSummary
		require.NoError(t, s.inTenant(t, s.companyA, func(r actions.TenantRepos) error {
			var err error
			list, err = r.Customers.SearchWithDebts(ctx, s.companyB, "acme", 10)
			return err
		}))
		assert.Empty(t, list)
	})

	t.Run("lecturas por id de otra empresa", func(t *testing.T) {
		require.NoError(t, s.inTenant(t, s.companyA, func(r actions.TenantRepos) error {
			c, err := r.Customers.GetByID(ctx, s.companyB, s.foreign)
			require.NoError(t, err)
			assert.Nil(t, c)

			d, err := r.Debts.ListByCustomer(ctx, s.foreign)
			require.NoError(t, err)
			assert.Empty(t, d)
			return nil
		}))
	})

	t.Run("insertar nota en otra empresa falla", func(t *testing.T) {
		err := s.inTenant(t, s.companyA, func(r actions.TenantRepos) error {
			return r.Notes.Create(ctx, &entity.Note{
				ID:         uuid.NewString(),
				CompanyID:  s.companyB,
				CustomerID: s.foreign,
				Content:    "intrusa",
				CreatedBy:  s.profileA,
				CreatedAt:  time.Now().UTC(),
			})
		})
		assert.ErrorContains(t, err, "insert note")

		var n int
		require.NoError(t, s.admin.QueryRow(ctx, `SELECT count(*) FROM notes`).Scan(&n))
		assert.Zero(t, n)
	})

	t.Run("nota propia visible solo para su empresa", func(t *testing.T) {
		require.NoError(t, s.inTenant(t, s.companyA, func(r actions.TenantRepos) error {
			return r.Notes.Create(ctx, &entity.Note{
				ID:         uuid.NewString(),
				CompanyID:  s.companyA,
				CustomerID: s.alfa,
				Content:    "Called customer",
				CreatedBy:  s.profileA,
				CreatedAt:  time.Now().UTC(),
			})
		}))

		count := func(companyID string) int {
			var notes []*entity.Note
			require.NoError(t, s.inTenant(t, companyID, func(r actions.TenantRepos) error {
				var err error
				notes, err = r.Notes.ListByCustomer(ctx, s.companyA, s.alfa, 10)
				return err
			}))
			return len(notes)
		}
		assert.Equal(t, 1, count(s.companyA))
		assert.Zero(t, count(s.companyB))
	})
}
