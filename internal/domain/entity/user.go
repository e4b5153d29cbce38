package entity

import "time"

// Roles válidos para User. Solo existen dos: el RBAC de esta API es user/admin.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa una cuenta del sistema.
// Email y Username son únicos a nivel de persistencia (índices únicos en Mongo).
type User struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"` // bcrypt hash, nunca plano después de persistir
	Role         string    `bson:"role"`     // user, admin
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
