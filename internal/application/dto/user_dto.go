package dto

// SignupRequest entrada para registro: username, email y password en texto plano
// (se hashea en el use case, nunca se persiste plano).
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse vista pública de un usuario: nunca incluye el hash de password.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse salida de signup y login: token firmado + usuario.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
