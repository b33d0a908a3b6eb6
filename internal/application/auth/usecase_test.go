package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushiymas/inventario-api/internal/application/auth"
	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	pkgjwt "github.com/sushiymas/inventario-api/pkg/jwt"
)

type stubUserRepo struct {
	users []*entity.User
	err   error
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) ([]*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.User
	for _, u := range s.users {
		if u.Username == username {
			out = append(out, u)
		}
	}
	return out, nil
}

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "sushi2024"
)

func newTestAuthUC(repo *stubUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "inventario-test",
	}, zerolog.Nop())
}

func seededUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     "admin",
		PasswordHash: string(hash),
	}
}

func TestLogin_Exitoso(t *testing.T) {
	user := seededUser(t)
	uc := newTestAuthUC(&stubUserRepo{users: []*entity.User{user}})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: testPassword})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "admin", resp.Username)

	userID, username, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err, "el token emitido debe ser verificable")
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "admin", username)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newTestAuthUC(&stubUserRepo{users: []*entity.User{seededUser(t)}})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, resp)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newTestAuthUC(&stubUserRepo{})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, resp)
}

// Más de una fila para el mismo username es corrupción de datos, no un login
// válido con la primera coincidencia.
func TestLogin_UsernameDuplicadoEsConflicto(t *testing.T) {
	u1 := seededUser(t)
	u2 := seededUser(t)
	u2.ID = "00000000-0000-0000-0000-000000000002"
	uc := newTestAuthUC(&stubUserRepo{users: []*entity.User{u1, u2}})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, resp)
}

func TestLogin_ErrorDelRepositorio(t *testing.T) {
	repoErr := errors.New("conexión perdida")
	uc := newTestAuthUC(&stubUserRepo{err: repoErr})

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: testPassword})
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, resp)
}
