package dto

import "time"

// CustomerSearchItem cliente en el resultado de búsqueda.
type CustomerSearchItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	TotalDebt float64 `json:"totalDebt"`
	Currency  string  `json:"currency"`
}

// SearchCustomersResult respuesta de GET /actions/customers/search. Customers nunca es nil.
type SearchCustomersResult struct {
	Customers []CustomerSearchItem `json:"customers"`
}

// DebtResponse deuda en el detalle de cliente.
type DebtResponse struct {
	ID              string    `json:"id"`
	RemainingAmount float64   `json:"remainingAmount"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CustomerDetailResponse detalle de cliente con deudas y notas (GET /api/customers/:id).
type CustomerDetailResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	TotalDebt float64        `json:"totalDebt"`
	Currency  string         `json:"currency"`
	Debts     []DebtResponse `json:"debts"`
	Notes     []NoteResponse `json:"notes"`
}
