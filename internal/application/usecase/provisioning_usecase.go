package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/internal/domain/repository"
	"github.com/jhoicas/Tahsilat-api/pkg/config"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// DemoSlug subdominio de la empresa demo.
const DemoSlug = "demo"

// SeedDebt deuda de un cliente demo.
type SeedDebt struct {
	Amount   string
	Currency string
}

// SeedCustomer cliente demo con sus deudas.
type SeedCustomer struct {
	Name  string
	Debts []SeedDebt
}

// DemoCustomers cartera de ejemplo. "Yıldız Market" no tiene deudas: se muestra con la moneda de respaldo.
var DemoCustomers = []SeedCustomer{
	{Name: "Anadolu Tekstil A.Ş.", Debts: []SeedDebt{{"12500.00", "TRY"}, {"3400.50", "TRY"}}},
	{Name: "Ege Gıda Ltd. Şti.", Debts: []SeedDebt{{"980.00", "EUR"}}},
	{Name: "Karadeniz Lojistik", Debts: []SeedDebt{{"45000.00", "TRY"}}},
	{Name: "Marmara Yapı", Debts: []SeedDebt{{"2750.00", "USD"}, {"1200.00", "TRY"}}},
	{Name: "Yıldız Market"},
}

// DemoSeeder crea la empresa demo, un usuario por rol y la cartera de ejemplo.
// Requiere el pool privilegiado: escribe en varias empresas sin contexto de tenant.
type DemoSeeder struct {
	companies *CompanyUseCase
	users     *UserUseCase
	companyRp repository.CompanyRepository
	customers repository.CustomerRepository
	debts     repository.DebtRepository
	log       *logger.Logger
}

// NewDemoSeeder construye el seeder.
func NewDemoSeeder(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	customerRepo repository.CustomerRepository,
	debtRepo repository.DebtRepository,
	log *logger.Logger,
) *DemoSeeder {
	return &DemoSeeder{
		companies: NewCompanyUseCase(companyRepo),
		users:     NewUserUseCase(userRepo, profileRepo),
		companyRp: companyRepo,
		customers: customerRepo,
		debts:     debtRepo,
		log:       log.Component("seed"),
	}
}

// Seed es idempotente para empresa y usuarios; los clientes solo se crean con la empresa nueva.
func (s *DemoSeeder) Seed(ctx context.Context, demo config.DemoConfig) (*entity.Company, error) {
	company, err := s.companyRp.GetBySlug(ctx, DemoSlug)
	if err != nil {
		return nil, err
	}
	fresh := company == nil
	if fresh {
		company, err = s.companies.Create(ctx, CreateCompanyInput{
			Name:         "Demo Tahsilat A.Ş.",
			Slug:         DemoSlug,
			BaseCurrency: "TRY",
			Timezone:     "Europe/Istanbul",
		})
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("company_id", company.ID).Msg("empresa demo creada")
	}

	for _, role := range entity.Roles {
		cred, ok := demo.Users[role]
		if !ok {
			continue
		}
		profile, err := s.users.Provision(ctx, ProvisionUserInput{
			CompanyID: company.ID,
			Email:     cred.Email,
			Password:  cred.Password,
			FullName:  "Demo " + role,
			Role:      role,
		})
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("role", role).Str("user_id", profile.ID).Msg("usuario demo listo")
	}

	if !fresh {
		return company, nil
	}
	now := time.Now().UTC()
	for i, c := range DemoCustomers {
		customer := &entity.Customer{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			Name:      c.Name,
			CreatedAt: now,
		}
		if err := s.customers.Create(ctx, customer); err != nil {
			return nil, err
		}
		for j, d := range c.Debts {
			amount, err := decimal.NewFromString(d.Amount)
			if err != nil {
				return nil, err
			}
			// created_at escalonado: la primera deuda define la moneda mostrada.
			debt, err := entity.NewDebt(uuid.New().String(), customer.ID, amount, d.Currency,
				now.Add(time.Duration(i*10+j)*time.Second))
			if err != nil {
				return nil, err
			}
			if err := s.debts.Create(ctx, debt); err != nil {
				return nil, err
			}
		}
	}
	s.log.Info().Int("customers", len(DemoCustomers)).Msg("cartera demo creada")
	return company, nil
}
