package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest body para POST /api/auth/registro.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionResponse sesión del usuario autenticado.
type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse tokens emitidos por Supabase Auth.
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"`
	User         SessionResponse `json:"user"`
}

// RegisterResponse resultado del registro. Si el proyecto exige confirmar el email
// no se emite token y ConfirmationSent es true.
type RegisterResponse struct {
	UserID           string         `json:"user_id"`
	Email            string         `json:"email"`
	ConfirmationSent bool           `json:"confirmacion_enviada"`
	Session          *LoginResponse `json:"sesion,omitempty"`
}
