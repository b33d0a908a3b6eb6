// Package auth implementa el login del usuario compartido del dashboard.
package auth

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
	"github.com/sushiymas/inventario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. La credencial se guarda con
// bcrypt y el detalle del fallo se registra internamente mientras el handler
// muestra siempre un mensaje genérico.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login verifica username/password y genera el token de sesión.
//
// Cero filas -> ErrUserNotFound. Más de una fila para el mismo username es un
// problema de integridad de datos -> ErrConflict (no se intenta elegir una).
// Hash que no coincide -> ErrUnauthorized. El handler colapsa los tres casos
// en la misma respuesta 401 genérica.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	users, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		uc.log.Warn().Str("username", in.Username).Msg("login: usuario inexistente")
		return nil, domain.ErrUserNotFound
	}
	if len(users) > 1 {
		uc.log.Error().
			Str("username", in.Username).
			Int("rows", len(users)).
			Msg("login: múltiples usuarios con el mismo username")
		return nil, domain.ErrConflict
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("username", in.Username).Msg("login: password incorrecto")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Username: user.Username}, nil
}
