package dto

import "time"

// CompanyResponse salida de una empresa (tenant).
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	BaseCurrency string    `json:"baseCurrency"`
	Timezone     string    `json:"timezone"`
	LogoURL      *string   `json:"logoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
