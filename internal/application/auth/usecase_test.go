package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/kyc-api/internal/application/auth"
	"github.com/tu-usuario/kyc-api/internal/application/dto"
	"github.com/tu-usuario/kyc-api/internal/domain"
	"github.com/tu-usuario/kyc-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/kyc-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "kyc-api-test"
	adminEmail = "root@example.com"
)

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateRole(id, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.Config{
		JWTSecret:         testSecret,
		JWTIssuer:         testIssuer,
		InitialAdminEmail: adminEmail,
		BcryptCost:        4, // costo mínimo para tests rápidos
	})
}

func register(t *testing.T, uc *auth.AuthUseCase, username, email, password string) {
	t.Helper()
	require.NoError(t, uc.Register(dto.RegisterRequest{Username: username, Email: email, Password: password}))
}

func TestRegister_LuegoLogin_TokenRoundTrip(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "ana", "ana@example.com", "secreta123")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// El token debe verificar y devolver exactamente la identidad registrada.
	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	stored, _ := repo.FindByEmail("ana@example.com")
	assert.Equal(t, stored.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "ana", "ana@example.com", "secreta123")

	stored, _ := repo.FindByEmail("ana@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado_Falla(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "ana", "ana@example.com", "secreta123")

	err := uc.Register(dto.RegisterRequest{Username: "otra", Email: "ana@example.com", Password: "x12345678"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_UsernameDuplicadoConOtroEmail_Falla(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "ana", "ana@example.com", "secreta123")

	err := uc.Register(dto.RegisterRequest{Username: "ana", Email: "otra@example.com", Password: "x12345678"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_EmailDelAdminInicial_NaceAdmin(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "root", adminEmail, "secreta123")
	register(t, uc, "ana", "ana@example.com", "secreta123")

	root, _ := repo.FindByEmail(adminEmail)
	ana, _ := repo.FindByEmail("ana@example.com")
	assert.Equal(t, entity.RoleAdmin, root.Role, "el email del admin inicial debe nacer con rol admin")
	assert.Equal(t, entity.RoleUser, ana.Role, "cualquier otro email nace con rol user")
}

func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "ana", "ana@example.com", "secreta123")

	_, errUnknown := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"})
	_, errWrongPw := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})

	// Indistinguibles desde afuera: no se filtra la existencia de la cuenta.
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestPromote_UsuarioDesconocido_NotFound(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{})

	err := uc.Promote(dto.PromoteRequest{Email: "nadie@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPromote_EsIdempotente(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newUseCase(repo)

	register(t, uc, "ana", "ana@example.com", "secreta123")

	require.NoError(t, uc.Promote(dto.PromoteRequest{Email: "ana@example.com"}))
	require.NoError(t, uc.Promote(dto.PromoteRequest{Email: "ana@example.com"}),
		"promover dos veces debe seguir siendo éxito")

	stored, _ := repo.FindByEmail("ana@example.com")
	assert.Equal(t, entity.RoleAdmin, stored.Role)
}
