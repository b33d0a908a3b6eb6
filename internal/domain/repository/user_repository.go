package repository

import (
	"context"

	"github.com/sushiymas/inventario-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// FindByUsername devuelve todas las filas coincidentes: más de una es un
// problema de integridad que el caso de uso de auth trata como conflicto.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) ([]*entity.User, error)
}
