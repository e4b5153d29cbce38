package usecase

import (
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/repository"
)

// UserUseCase consultas de perfil del usuario autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Me devuelve username y rol del usuario del token. Solo esos dos campos:
// ni email ni hash salen por esta vía.
func (uc *UserUseCase) Me(userID string) (*dto.MeResponse, error) {
	user, err := uc.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MeResponse{Username: user.Username, Role: user.Role}, nil
}
