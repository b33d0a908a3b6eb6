package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, stock, min_stock, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.Stock,
		product.MinStock, product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, o nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, category_id, stock, min_stock, description, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	var categoryID sql.NullString
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &categoryID, &p.Stock, &p.MinStock, &p.Description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.CategoryID = categoryID.String
	return &p, nil
}

// Update actualiza los campos editables del producto. Stock no se toca aquí:
// se muta solo vía UpdateStock para que el ledger controle el invariante.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category_id = $3, min_stock = $4, description = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.MinStock,
		product.Description, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock persiste el nuevo nivel de existencias. El valor ya viene
// validado por el ledger; el CHECK (stock >= 0) de la tabla es la última red.
func (r *ProductRepo) UpdateStock(ctx context.Context, productID string, stock int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, category_id, stock, min_stock, description, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &categoryID, &p.Stock, &p.MinStock,
			&p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.CategoryID = categoryID.String
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListWithCategory lista productos con el nombre de su categoría vía LEFT
// JOIN. El nombre llega NULL cuando la referencia no resuelve; eso se
// traduce al sum type CategoryRef y el respaldo textual se decide más arriba.
func (r *ProductRepo) ListWithCategory(ctx context.Context) ([]*entity.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.category_id, p.stock, p.min_stock, p.description,
		       p.created_at, p.updated_at, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products with category: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithCategory
	for rows.Next() {
		var p entity.ProductWithCategory
		var categoryID, categoryName sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &categoryID, &p.Stock, &p.MinStock,
			&p.Description, &p.CreatedAt, &p.UpdatedAt, &categoryName); err != nil {
			return nil, fmt.Errorf("scan product with category: %w", err)
		}
		p.CategoryID = categoryID.String
		p.Category = entity.CategoryRef{Name: categoryName.String, Valid: categoryName.Valid}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
