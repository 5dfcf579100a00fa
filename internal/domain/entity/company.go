package entity

import "time"

// Company representa una empresa/tenant del sistema. El slug es el subdominio de acceso.
type Company struct {
	ID           string
	Name         string
	Slug         string // único; <slug>.<dominio base>
	BaseCurrency string // ISO 4217, ej. TRY
	Timezone     string // IANA, ej. Europe/Istanbul
	LogoURL      *string
	CreatedAt    time.Time
}
