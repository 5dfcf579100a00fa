package dto

import "time"

// CreateNoteInput formulario de alta de nota (POST /actions/notes).
type CreateNoteInput struct {
	CustomerID string `form:"customerId" json:"customerId" validate:"required,uuid" msg:"note.customer_id_invalid"`
	Content    string `form:"content" json:"content" validate:"required,max=5000" msg:"required:note.content_required;max:note.content_too_long"`
}

// ActionResult resultado de una acción de escritura. Error vacío cuando Success es true.
type ActionResult struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message"`
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// NoteResponse nota en respuestas.
type NoteResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Content    string    `json:"content"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
