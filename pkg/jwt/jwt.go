// Package jwt valida los access tokens emitidos por Supabase Auth (HS256 con el
// JWT secret del proyecto).
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AudienceAuthenticated audiencia por defecto de los tokens de usuarios con sesión.
	AudienceAuthenticated = "authenticated"
	// RoleAuthenticated rol de un usuario con sesión; la anon key firma con rol "anon".
	RoleAuthenticated = "authenticated"
)

// Claims subconjunto de los claims de un access token de Supabase.
// Subject es el id (uuid) del usuario en auth.users.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"` // "authenticated" | "anon" | "service_role"
}

// Identity datos del usuario extraídos de un token válido.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Generate firma un token con la forma de los de Supabase. Lo usan los tests y el
// seed; en producción los tokens los emite Supabase Auth.
func Generate(secret string, userID uuid.UUID, email, role, audience string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
		Role:  role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, expiración y audiencia (si audience no es vacío) y devuelve la identidad.
func Parse(secret, audience, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("jwt: sub no es un uuid: %w", err)
	}
	if userID == uuid.Nil {
		return nil, errors.New("jwt: sub vacío")
	}
	return &Identity{
		UserID:    userID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
