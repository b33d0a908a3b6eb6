package dto

// LoginRequest credenciales del usuario compartido del dashboard.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token de sesión tras un login exitoso.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
