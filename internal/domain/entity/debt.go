package entity

import (
	"time"

	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Debt saldo pendiente de un cliente en una moneda.
type Debt struct {
	ID              string
	CustomerID      string
	RemainingAmount decimal.Decimal // >= 0
	Currency        string
	CreatedAt       time.Time
}

// NewDebt construye una deuda validando que el saldo no sea negativo.
func NewDebt(id, customerID string, remaining decimal.Decimal, currency string, now time.Time) (*Debt, error) {
	if remaining.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}
	return &Debt{
		ID:              id,
		CustomerID:      customerID,
		RemainingAmount: remaining,
		Currency:        currency,
		CreatedAt:       now,
	}, nil
}
