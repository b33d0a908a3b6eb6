package repository

import (
	"context"

	"github.com/sushiymas/inventario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Stock solo se muta vía UpdateStock para que el ledger controle el invariante.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, productID string, stock int) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListWithCategory(ctx context.Context) ([]*entity.ProductWithCategory, error)
	Delete(ctx context.Context, id string) error
}
