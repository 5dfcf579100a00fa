package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrUnauthenticated: no hay sesión activa.
	ErrUnauthenticated = errors.New("sesión no encontrada")
	// ErrProfileNotFound: hay sesión pero la identidad no tiene perfil (sin empresa asociada).
	ErrProfileNotFound = fmt.Errorf("perfil no encontrado: %w", ErrUnauthorized)
	// ErrInvalidCredentials se devuelve tal cual al cliente en el login por contraseña.
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrNegativeAmount     = errors.New("el saldo pendiente no puede ser negativo")
)

// ValidationError errores por campo de un formulario. Fields: campo -> clave de mensaje.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación: " + strings.Join(parts, ", ")
}

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// StoreError falla de la base de datos en una operación concreta.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError envuelve err; devuelve nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
