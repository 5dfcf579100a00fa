package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/Tahsilat-api/internal/application/tenant"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

const (
	customerID = "11111111-1111-1111-1111-111111111111"
	companyC1  = "c1c1c1c1-0000-0000-0000-000000000001"
	userID     = "u0000000-0000-0000-0000-000000000001"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newNoteUseCase(f *fixture) *NoteUseCase {
	uc := NewNoteUseCase(f.tx, f.resolver, f.inv, logger.Nop())
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "note-1" }
	return uc
}

func TestCreateNote_Escenario(t *testing.T) {
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(tenant.Context{UserID: userID, CompanyID: companyC1, Role: entity.RoleSeller}, nil)
	f.tx.On("RunTenant", mock.Anything, companyC1).Return(nil)
	f.customers.On("GetByID", mock.Anything, companyC1, customerID).
		Return(&entity.Customer{ID: customerID, CompanyID: companyC1, Name: "Acme"}, nil)
	f.notes.On("Create", mock.Anything, mock.AnythingOfType("*entity.Note")).Return(nil)
	f.inv.On("Invalidate", mock.Anything, "/customers/"+customerID).Return(nil)

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, userID, map[string]any{
		"customerId": customerID,
		"content":    "Called customer",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Not başarıyla eklendi.", res.Message)
	assert.Equal(t, "", res.Error)

	f.notes.AssertNumberOfCalls(t, "Create", 1)
	note := f.notes.Calls[0].Arguments.Get(1).(*entity.Note)
	assert.Equal(t, entity.Note{
		ID:         "note-1",
		CompanyID:  companyC1,
		CustomerID: customerID,
		Content:    "Called customer",
		CreatedBy:  userID,
		CreatedAt:  fixedNow,
	}, *note)
	f.inv.AssertNumberOfCalls(t, "Invalidate", 1)
}

func TestCreateNote_CustomerIDEnMayusculas(t *testing.T) {
	const upper = "AAAAAAAA-BBBB-4CCC-8DDD-EEEEEEEEEEEE"
	const lower = "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee"
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(tenant.Context{UserID: userID, CompanyID: companyC1, Role: entity.RoleSeller}, nil)
	f.tx.On("RunTenant", mock.Anything, companyC1).Return(nil)
	f.customers.On("GetByID", mock.Anything, companyC1, lower).
		Return(&entity.Customer{ID: lower, CompanyID: companyC1, Name: "Acme"}, nil)
	f.notes.On("Create", mock.Anything, mock.AnythingOfType("*entity.Note")).Return(nil)
	f.inv.On("Invalidate", mock.Anything, "/customers/"+lower).Return(nil)

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, userID, map[string]any{
		"customerId": upper,
		"content":    "Called customer",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
	note := f.notes.Calls[0].Arguments.Get(1).(*entity.Note)
	assert.Equal(t, lower, note.CustomerID)
	f.inv.AssertCalled(t, "Invalidate", mock.Anything, "/customers/"+lower)
}

func TestCreateNote_ContenidoVacioNoTocaElStore(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		f := newFixture()

		res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, userID, map[string]any{
			"customerId": customerID,
			"content":    content,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.False(t, res.Success)
		assert.Equal(t, "Not içeriği boş olamaz.", res.Error)
		assert.Equal(t, "Not içeriği boş olamaz.", res.FieldErrors["content"])
		f.resolver.AssertNumberOfCalls(t, "Resolve", 0)
		f.tx.AssertNumberOfCalls(t, "RunTenant", 0)
		f.notes.AssertNumberOfCalls(t, "Create", 0)
		f.inv.AssertNumberOfCalls(t, "Invalidate", 0)
	}
}

func TestCreateNote_SinSesion(t *testing.T) {
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, "").Return(tenant.Context{}, domain.ErrUnauthenticated)

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, "", map[string]any{
		"customerId": customerID,
		"content":    "hola",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.Equal(t, "Oturum açmanız gerekiyor.", res.Error)
	f.tx.AssertNumberOfCalls(t, "RunTenant", 0)
	f.inv.AssertNumberOfCalls(t, "Invalidate", 0)
}

func TestCreateNote_SinPerfil(t *testing.T) {
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, userID).Return(tenant.Context{}, domain.ErrProfileNotFound)

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.English, userID, map[string]any{
		"customerId": customerID,
		"content":    "hello",
	})

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Equal(t, "User profile not found.", res.Error)
	f.notes.AssertNumberOfCalls(t, "Create", 0)
}

func TestCreateNote_ClienteDeOtraEmpresa(t *testing.T) {
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(tenant.Context{UserID: userID, CompanyID: companyC1}, nil)
	f.tx.On("RunTenant", mock.Anything, companyC1).Return(nil)
	// Filtrado por company_id: un cliente de otra empresa no se encuentra.
	f.customers.On("GetByID", mock.Anything, companyC1, customerID).Return(nil, nil)

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, userID, map[string]any{
		"customerId": customerID,
		"content":    "hola",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Müşteri bulunamadı.", res.Error)
	f.notes.AssertNumberOfCalls(t, "Create", 0)
	f.inv.AssertNumberOfCalls(t, "Invalidate", 0)
}

func TestCreateNote_ErrorDeStoreSinRevalidacion(t *testing.T) {
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(tenant.Context{UserID: userID, CompanyID: companyC1}, nil)
	f.tx.On("RunTenant", mock.Anything, companyC1).Return(nil)
	f.customers.On("GetByID", mock.Anything, companyC1, customerID).
		Return(&entity.Customer{ID: customerID, CompanyID: companyC1}, nil)
	f.notes.On("Create", mock.Anything, mock.Anything).Return(errors.New("new row violates row-level security policy"))

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, userID, map[string]any{
		"customerId": customerID,
		"content":    "hola",
	})

	var storeErr *domain.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.False(t, res.Success)
	assert.Equal(t, "Not eklenirken hata oluştu: new row violates row-level security policy", res.Error)
	f.inv.AssertNumberOfCalls(t, "Invalidate", 0)
}

func TestCreateNote_FalloDeRevalidacionNoRompeElAlta(t *testing.T) {
	f := newFixture()
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(tenant.Context{UserID: userID, CompanyID: companyC1}, nil)
	f.tx.On("RunTenant", mock.Anything, companyC1).Return(nil)
	f.customers.On("GetByID", mock.Anything, companyC1, customerID).
		Return(&entity.Customer{ID: customerID, CompanyID: companyC1}, nil)
	f.notes.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.inv.On("Invalidate", mock.Anything, mock.Anything).Return(errors.New("redis: connection refused"))

	res, err := newNoteUseCase(f).CreateNote(context.Background(), language.Turkish, userID, map[string]any{
		"customerId": customerID,
		"content":    "hola",
	})

	require.NoError(t, err)
	assert.True(t, res.Success)
}
