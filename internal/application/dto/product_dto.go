package dto

import "time"

// CreateProductRequest alta de producto. MinStock cero u omitido usa el
// valor por defecto (5).
type CreateProductRequest struct {
	Name        string `json:"name"`
	CategoryID  string `json:"category_id"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	Description string `json:"description"`
}

// UpdateProductRequest actualización parcial; Stock no se toca por aquí,
// solo vía el ajuste de stock.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	CategoryID  *string `json:"category_id"`
	MinStock    *int    `json:"min_stock"`
	Description *string `json:"description"`
}

// AdjustStockRequest delta de existencias (+1 / -1 desde los botones del
// dashboard, cualquier entero por API).
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse producto en respuestas, con el nombre de categoría resuelto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CategoryID  string    `json:"category_id"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"min_stock"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
