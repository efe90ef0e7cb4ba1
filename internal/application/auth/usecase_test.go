package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/construstock/internal/application/auth"
	"github.com/tu-usuario/construstock/internal/application/dto"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/pkg/jwt"
)

type memUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newAuthUC() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secreto-de-prueba",
		ExpMinutes: 60,
		Issuer:     "construstock",
	})
	return uc, repo
}

func TestRegister_HasheaPasswordYAsignaRol(t *testing.T) {
	uc, repo := newAuthUC()

	out, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@obra.co",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role, "rol por defecto")

	stored, err := repo.FindByUsername("maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Email: "maria@obra.co", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Email: "otra@obra.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Register(dto.RegisterRequest{Username: "otra", Email: "maria@obra.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := newAuthUC()

	cases := []dto.RegisterRequest{
		{Email: "a@b.co", Password: "secreta123"},                                  // sin username
		{Username: "maria", Password: "secreta123"},                                // sin email
		{Username: "maria", Email: "a@b.co", Password: "corta"},                    // password < 6
		{Username: "maria", Email: "a@b.co", Password: "secreta123", Role: "root"}, // rol desconocido
	}
	for i, req := range cases {
		_, err := uc.Register(req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestLogin_TokenConClaims(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{
		Username: "maria",
		Email:    "maria@obra.co",
		Password: "secreta123",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, username, role, err := jwt.Parse("secreto-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "maria", username)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Email: "maria@obra.co", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.Me(999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
