package ports

import (
	"context"
	"time"
)

// AuthUser usuario tal como lo devuelve el proveedor de identidad.
type AuthUser struct {
	ID    string
	Email string
	Role  string
}

// AuthSession tokens emitidos tras un login exitoso.
type AuthSession struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	ExpiresAt    time.Time
	User         AuthUser
}

// SignUpResult resultado de un registro. Session es nil cuando el proveedor exige
// confirmar el email antes de emitir tokens.
type SignUpResult struct {
	User    AuthUser
	Session *AuthSession
}

// AuthProvider define el puerto de salida hacia el servicio de autenticación remoto
// (Supabase Auth). La aplicación no guarda contraseñas.
//
// Errores esperados: domain.ErrUnauthorized (credenciales inválidas),
// domain.ErrDuplicate (email ya registrado), domain.ErrInvalidInput (contraseña débil, email inválido).
type AuthProvider interface {
	SignIn(ctx context.Context, email, password string) (*AuthSession, error)
	SignUp(ctx context.Context, email, password string) (*SignUpResult, error)
}
