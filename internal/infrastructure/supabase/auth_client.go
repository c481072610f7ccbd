// Package supabase adapta Supabase Auth (GoTrue) al puerto ports.AuthProvider.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/tienda-inventario/internal/application/ports"
	"github.com/jhoicas/tienda-inventario/internal/domain"
)

// Verificar en tiempo de compilación que AuthClient implementa AuthProvider.
var _ ports.AuthProvider = (*AuthClient)(nil)

// AuthClient cliente HTTP de la API de Auth de un proyecto Supabase.
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewAuthClient construye el cliente. baseURL es la URL del proyecto (https://<ref>.supabase.co).
func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras del protocolo GoTrue ──────────────────────────────────────────

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type gotrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type gotrueSession struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int         `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	User         *gotrueUser `json:"user"`
}

// gotrueSignUp puede traer una sesión (autoconfirmación) o directamente el usuario.
type gotrueSignUp struct {
	gotrueSession
	gotrueUser
}

// gotrueError cubre el formato nuevo (code/error_code/msg) y el antiguo (error/error_description).
type gotrueError struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e gotrueError) code() string {
	if e.ErrorCode != "" {
		return e.ErrorCode
	}
	return e.Error
}

func (e gotrueError) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.ErrorDescription
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// SignIn inicia sesión con email y contraseña (grant_type=password).
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*ports.AuthSession, error) {
	var s gotrueSession
	if err := c.post(ctx, "/auth/v1/token?grant_type=password", credentials{email, password}, &s); err != nil {
		return nil, err
	}
	if s.AccessToken == "" || s.User == nil {
		return nil, fmt.Errorf("supabase auth: respuesta de login sin sesión")
	}
	return toSession(&s), nil
}

// SignUp registra un usuario nuevo.
func (c *AuthClient) SignUp(ctx context.Context, email, password string) (*ports.SignUpResult, error) {
	var r gotrueSignUp
	if err := c.post(ctx, "/auth/v1/signup", credentials{email, password}, &r); err != nil {
		return nil, err
	}
	if r.AccessToken != "" && r.gotrueSession.User != nil {
		s := toSession(&r.gotrueSession)
		return &ports.SignUpResult{User: s.User, Session: s}, nil
	}
	if r.gotrueUser.ID == "" {
		return nil, fmt.Errorf("supabase auth: respuesta de registro sin usuario")
	}
	return &ports.SignUpResult{User: ports.AuthUser{
		ID:    r.gotrueUser.ID,
		Email: r.gotrueUser.Email,
		Role:  r.gotrueUser.Role,
	}}, nil
}

func (c *AuthClient) post(ctx context.Context, path string, payload, out any) error {
	if c.baseURL == "" || c.anonKey == "" {
		return fmt.Errorf("supabase auth: SUPABASE_URL o SUPABASE_ANON_KEY no configurado")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("supabase auth: serializar request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("supabase auth: crear HTTP request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("supabase auth: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("supabase auth: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("supabase auth: leer respuesta: %w", err)
	}
	if resp.StatusCode >= 300 {
		return mapError(resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("supabase auth: deserializar respuesta: %w", err)
	}
	return nil
}

// mapError traduce los errores de GoTrue a errores de dominio.
func mapError(status int, raw []byte) error {
	var e gotrueError
	_ = json.Unmarshal(raw, &e)
	msg := e.message()
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}

	switch e.code() {
	case "invalid_credentials", "invalid_grant", "email_not_confirmed":
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case "user_already_exists", "email_exists":
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, msg)
	case "weak_password", "validation_failed", "email_address_invalid":
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	switch {
	case status == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "already registered"):
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, msg)
	case status == http.StatusBadRequest || status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	return fmt.Errorf("supabase auth: HTTP %d: %s", status, msg)
}

func toSession(s *gotrueSession) *ports.AuthSession {
	out := &ports.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresIn:    s.ExpiresIn,
	}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0)
	case s.ExpiresIn > 0:
		out.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	if s.User != nil {
		out.User = ports.AuthUser{ID: s.User.ID, Email: s.User.Email, Role: s.User.Role}
	}
	return out
}
