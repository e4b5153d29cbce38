package dto

// RegisterRequest entrada para registro: username, email y password.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con el token JWT de sesión.
type LoginResponse struct {
	Token string `json:"token"`
}

// PromoteRequest entrada para promover una cuenta a admin.
type PromoteRequest struct {
	Email string `json:"email"`
}

// MeResponse perfil mínimo del usuario autenticado. Nunca expone email ni hash.
type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
