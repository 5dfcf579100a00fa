package entity

import "time"

// Note anotación libre sobre un cliente. Inmutable: no hay update ni delete.
type Note struct {
	ID         string
	CompanyID  string
	CustomerID string
	Content    string
	CreatedBy  string // Profile.ID
	CreatedAt  time.Time
}
