package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmontoya/spapos-api/internal/application/auth"
	"github.com/jmontoya/spapos-api/internal/application/dto"
	"github.com/jmontoya/spapos-api/internal/domain"
	"github.com/jmontoya/spapos-api/internal/domain/entity"
	pkgjwt "github.com/jmontoya/spapos-api/pkg/jwt"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.byUsername))
	for _, u := range r.byUsername {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error { return nil }

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T, users ...*entity.User) (*auth.UseCase, *fakeUserRepo) {
	t.Helper()
	repo := &fakeUserRepo{byUsername: make(map[string]*entity.User)}
	for _, u := range users {
		require.NoError(t, repo.Create(u))
	}
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "spapos-test",
	}), repo
}

func userWithPassword(t *testing.T, username, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID: uuid.NewString(), Username: username,
		PasswordHash: string(hash), Role: role, Status: "active",
	}
}

// Caso 1: login correcto emite un JWT con los claims del usuario.
func TestLogin_EmiteTokenValido(t *testing.T) {
	uc, _ := newUseCase(t, userWithPassword(t, "kasir1", "secreto123", entity.RoleCashier))

	resp, err := uc.Login(dto.LoginRequest{Username: "kasir1", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, "kasir1", resp.Username)
	assert.Equal(t, entity.RoleCashier, resp.Role)

	userID, username, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, userID)
	assert.Equal(t, "kasir1", username)
	assert.Equal(t, entity.RoleCashier, role)
}

// Caso 2: password incorrecto y usuario inexistente devuelven el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newUseCase(t, userWithPassword(t, "kasir1", "secreto123", entity.RoleCashier))

	_, err := uc.Login(dto.LoginRequest{Username: "kasir1", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Caso 3: usuario inactivo no puede entrar aunque el password sea correcto.
func TestLogin_UsuarioInactivo(t *testing.T) {
	user := userWithPassword(t, "exempleado", "secreto123", entity.RoleCashier)
	user.Status = "inactive"
	uc, _ := newUseCase(t, user)

	_, err := uc.Login(dto.LoginRequest{Username: "exempleado", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Caso 4: registro hashea el password y rechaza usernames repetidos.
func TestRegisterUser(t *testing.T) {
	uc, repo := newUseCase(t)

	resp, err := uc.RegisterUser(dto.RegisterUserRequest{
		Username: "admin1", Password: "clave-segura", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	stored := repo.byUsername["admin1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura", stored.PasswordHash, "el password nunca se guarda plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-segura")))

	_, err = uc.RegisterUser(dto.RegisterUserRequest{
		Username: "admin1", Password: "otra-clave", Role: entity.RoleCashier,
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// Caso 5: rol fuera del enum no pasa la validación.
func TestRegisterUser_RolInvalido(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.RegisterUser(dto.RegisterUserRequest{
		Username: "raro", Password: "clave-segura", Role: "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
