package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// ValidRole responde si el rol pertenece al conjunto cerrado {ADMIN, USER}.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, USER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
