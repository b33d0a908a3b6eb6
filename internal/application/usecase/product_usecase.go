package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/application/notification"
	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Las existencias solo se
// mutan vía el ledger de stock, nunca por Update.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	sink       *notification.Sink
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	sink *notification.Sink,
) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, sink: sink}
}

// Create valida y crea un producto. Rechaza antes de tocar la base:
// nombre vacío, categoría inexistente o stock inicial negativo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.Stock < 0 || in.MinStock < 0 {
		uc.sink.Error("Por favor, completa todos los campos correctamente. Las existencias no pueden ser negativas.")
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		uc.sink.Error("La categoría seleccionada no existe.")
		return nil, domain.ErrInvalidInput
	}
	minStock := in.MinStock
	if minStock == 0 {
		minStock = entity.DefaultMinStock
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
		MinStock:    minStock,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.sink.Success("Producto agregado exitosamente.")
	return toProductResponse(product, entity.CategoryRef{Name: category.Name, Valid: true}), nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	ref := entity.CategoryRef{}
	if category, err := uc.categories.GetByID(ctx, product.CategoryID); err == nil && category != nil {
		ref = entity.CategoryRef{Name: category.Name, Valid: true}
	}
	return toProductResponse(product, ref), nil
}

// Update actualiza campos editables del producto. No toca Stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List lista productos con su categoría, filtrables por texto (nombre o
// descripción) y por categoría, para el buscador del dashboard.
func (uc *ProductUseCase) List(ctx context.Context, search, categoryID string) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(search)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		items = append(items, *toProductResponse(&p.Product, p.Category))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}
	uc.sink.Success("Producto eliminado exitosamente.")
	return nil
}

func toProductResponse(p *entity.Product, ref entity.CategoryRef) *dto.ProductResponse {
	category := "Sin categoría"
	if ref.Valid {
		category = ref.Name
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Category:    category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Description: p.Description,
		Status:      p.Status(),
		LowStock:    p.IsLowStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
