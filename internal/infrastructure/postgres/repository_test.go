package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
)

const (
	mockCompanyID  = "c1c1c1c1-0000-0000-0000-000000000001"
	mockCustomerID = "11111111-1111-1111-1111-111111111111"
)

var summaryColumns = []string{"id", "company_id", "name", "total_debt", "currency"}

func newMockConn(t *testing.T) pgxmock.PgxConnIface {
	t.Helper()
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close(context.Background()) })
	return mock
}

func strPtr(s string) *string { return &s }

func TestSearchWithDebts_PatronEscapadoYLimite(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(regexp.QuoteMeta(`c.name ILIKE $2 ESCAPE '\'`)).
		WithArgs(mockCompanyID, `%50\%\_off%`, 10).
		WillReturnRows(pgxmock.NewRows(summaryColumns))

	list, err := NewCustomerRepository(mock).SearchWithDebts(context.Background(), mockCompanyID, "50%_off", 10)

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchWithDebts_FilasConYSinDeudas(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE(SUM(d.remaining_amount), 0) AS total_debt`)).
		WithArgs(mockCompanyID, "%acme%", 10).
		WillReturnRows(pgxmock.NewRows(summaryColumns).
			AddRow("a1", mockCompanyID, "Acme Alfa", decimal.RequireFromString("150.00"), strPtr("EUR")).
			AddRow("a2", mockCompanyID, "Acme Beta", decimal.Zero, (*string)(nil)))

	list, err := NewCustomerRepository(mock).SearchWithDebts(context.Background(), mockCompanyID, "acme", 10)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].TotalDebt.Equal(decimal.NewFromInt(150)))
	require.NotNil(t, list[0].Currency)
	assert.Equal(t, "EUR", *list[0].Currency)
	assert.True(t, list[1].TotalDebt.IsZero())
	assert.Nil(t, list[1].Currency, "sin deudas no hay moneda")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchWithDebts_ErrorDeConsulta(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery("FROM customers c").WillReturnError(errors.New("conn closed"))

	_, err := NewCustomerRepository(mock).SearchWithDebts(context.Background(), mockCompanyID, "x", 10)

	assert.ErrorContains(t, err, "search customers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerGetByID_FiltraPorEmpresa(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND company_id = $2`)).
		WithArgs(mockCustomerID, mockCompanyID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_id", "name", "created_at"}))

	c, err := NewCustomerRepository(mock).GetByID(context.Background(), mockCompanyID, mockCustomerID)

	require.NoError(t, err)
	assert.Nil(t, c, "sin fila: (nil, nil)")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteCreate(t *testing.T) {
	mock := newMockConn(t)
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	n := &entity.Note{
		ID:         "n1",
		CompanyID:  mockCompanyID,
		CustomerID: mockCustomerID,
		Content:    "Called customer",
		CreatedBy:  "u1",
		CreatedAt:  now,
	}
	mock.ExpectExec("INSERT INTO notes").
		WithArgs("n1", mockCompanyID, mockCustomerID, "Called customer", "u1", now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewNoteRepository(mock).Create(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteCreate_Error(t *testing.T) {
	mock := newMockConn(t)
	mock.ExpectExec("INSERT INTO notes").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("new row violates row-level security policy"))

	err := NewNoteRepository(mock).Create(context.Background(), &entity.Note{ID: "n1"})

	assert.ErrorContains(t, err, "insert note")
	assert.NoError(t, mock.ExpectationsWereMet())
}
