package repository

import "github.com/tu-usuario/kyc-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Find* devuelven (nil, nil) cuando no hay documento: la ausencia no es error
// de infraestructura, la decide el caso de uso.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	UpdateRole(id, role string) error
	CountByRole(role string) (int64, error)
}
