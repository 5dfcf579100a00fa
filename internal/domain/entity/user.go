package entity

import "time"

// User identidad de autenticación (email + hash bcrypt). La empresa se obtiene del Profile.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
