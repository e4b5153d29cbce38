package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/entity"
	"github.com/tu-usuario/kyc-api/internal/domain/repository"
	"github.com/tu-usuario/kyc-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Config parámetros del caso de uso de auth, tomados del Config global en main.
type Config struct {
	JWTSecret         string
	JWTIssuer         string
	InitialAdminEmail string
	BcryptCost        int // work factor de bcrypt; más alto = más lento linealmente
}

// AuthUseCase casos de uso de autenticación: registro, login y promoción a admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg Config) *AuthUseCase {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{userRepo: userRepo, cfg: cfg}
}

// Register crea una cuenta: verifica unicidad de email y username, hashea el
// password y persiste. La primera cuenta cuyo email coincide con el admin
// inicial configurado nace con rol admin; el resto con rol user.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) error {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmailAlreadyExists
	}
	existing, err = uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cfg.BcryptCost)
	if err != nil {
		return err
	}

	role := entity.RoleUser
	if uc.cfg.InitialAdminEmail != "" && in.Email == uc.cfg.InitialAdminEmail {
		role = entity.RoleAdmin
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.userRepo.Create(user)
}

// Login verifica email/password y emite un JWT con {userId, role}.
// Email desconocido y password incorrecto devuelven el MISMO error: no se
// filtra si la cuenta existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Role, uc.cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Promote asigna rol admin a la cuenta con ese email. Idempotente: promover a
// quien ya es admin vuelve a ser éxito. El llamador ya pasó RequireAdmin.
func (uc *AuthUseCase) Promote(in dto.PromoteRequest) error {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.UpdateRole(user.ID, entity.RoleAdmin)
}
