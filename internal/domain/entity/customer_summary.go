package entity

import "github.com/shopspring/decimal"

// CustomerSummary cliente con el total adeudado agregado (lectura de búsqueda).
// Currency es nil cuando el cliente no tiene deudas.
type CustomerSummary struct {
	ID        string
	CompanyID string
	Name      string
	TotalDebt decimal.Decimal
	Currency  *string
}
