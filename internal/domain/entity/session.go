package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session identifica al usuario autenticado (token de Supabase Auth ya verificado).
// Se pasa explícitamente a los casos de uso que distinguen "no autenticado" de "sin datos".
type Session struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// IsZero indica que no hay sesión.
func (s Session) IsZero() bool {
	return s.UserID == uuid.Nil
}
