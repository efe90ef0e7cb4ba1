package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User es la identidad que opera el sistema. El ledger solo la consume
// como user_id opaco en las transacciones.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
