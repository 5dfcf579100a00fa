package entity

import "time"

// Customer cliente deudor de una empresa.
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
}
