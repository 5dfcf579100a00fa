package receivables

import (
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Summarize implementa el total adeudado de un cliente (servicio de dominio).
// Total = Σ RemainingAmount; la moneda mostrada es la de la primera deuda (orden de alta)
// o fallback si no hay deudas. No convierte entre monedas.
func Summarize(debts []*entity.Debt, fallback string) (decimal.Decimal, string) {
	total := decimal.Zero
	currency := fallback
	first := true
	for _, d := range debts {
		if d == nil {
			continue
		}
		total = total.Add(d.RemainingAmount)
		if first {
			first = false
			if d.Currency != "" {
				currency = d.Currency
			}
		}
	}
	return total, currency
}
