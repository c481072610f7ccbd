package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/application/ports"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// AuthUseCase casos de uso de autenticación: login, registro y sesión actual.
// La identidad vive en Supabase Auth; aquí solo se delega y se adapta la respuesta.
type AuthUseCase struct {
	provider ports.AuthProvider
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(provider ports.AuthProvider) *AuthUseCase {
	return &AuthUseCase{provider: provider}
}

// Login autentica con email y contraseña y devuelve los tokens emitidos.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.provider.SignIn(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}
	return toLoginResponse(s), nil
}

// Register crea la cuenta. Si el proyecto exige confirmación por email no se emite sesión.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	res, err := uc.provider.SignUp(ctx, email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	out := &dto.RegisterResponse{
		UserID:           res.User.ID,
		Email:            res.User.Email,
		ConfirmationSent: res.Session == nil,
	}
	if res.Session != nil {
		out.Session = toLoginResponse(res.Session)
	}
	return out, nil
}

// CurrentSession devuelve los datos de la sesión ya verificada por el middleware.
func (uc *AuthUseCase) CurrentSession(session entity.Session) (*dto.SessionResponse, error) {
	if session.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	return &dto.SessionResponse{
		UserID:    session.UserID.String(),
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toLoginResponse(s *ports.AuthSession) *dto.LoginResponse {
	return &dto.LoginResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
		User: dto.SessionResponse{
			UserID:    s.User.ID,
			Email:     s.User.Email,
			Role:      s.User.Role,
			ExpiresAt: s.ExpiresAt,
		},
	}
}
