package dto

// Códigos de ErrorResponse.Code.
const (
	CodeValidation        = "VALIDATION"
	CodeUnauthenticated   = "UNAUTHENTICATED"
	CodeProfileNotFound   = "PROFILE_NOT_FOUND"
	CodeNotFound          = "NOT_FOUND"
	CodeTenantNotFound    = "TENANT_NOT_FOUND"
	CodeTenantCheckFailed = "TENANT_CHECK_FAILED"
	CodeInternal          = "INTERNAL"
)

// ErrorResponse cuerpo de error HTTP para rutas que no devuelven ActionResult.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError arma un ErrorResponse con el mensaje ya localizado.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
