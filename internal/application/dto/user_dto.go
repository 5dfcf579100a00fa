package dto

// DemoLoginInput formulario de login demo (POST /actions/demo-login).
// El rol se valida contra la lista cerrada en la acción: vacío o desconocido es "Invalid role".
type DemoLoginInput struct {
	Role string `form:"role" json:"role"`
}

// LoginRequest login por contraseña dentro del subdominio de una empresa.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required"`
}

// LoginResult resultado de un login. Token solo va en el cuerpo para clientes no navegador;
// el navegador recibe la cookie de sesión.
type LoginResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Token   string `json:"token,omitempty"`
}
