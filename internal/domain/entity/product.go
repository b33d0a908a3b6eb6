package entity

import "time"

// DefaultMinStock umbral de stock bajo cuando no se indica uno al crear.
const DefaultMinStock = 5

// Estados posibles de stock. El orden de evaluación importa: "Sin Stock"
// tiene prioridad sobre "Stock Bajo" incluso cuando min_stock es 0.
const (
	StatusNoStock  = "Sin Stock"
	StatusLowStock = "Stock Bajo"
	StatusNormal   = "Normal"
)

// Product representa un producto del inventario.
// Invariante: Stock nunca es negativo; toda mutación que lo dejaría
// por debajo de cero se rechaza antes de persistir.
type Product struct {
	ID          string
	Name        string
	CategoryID  string
	Stock       int
	MinStock    int
	Description string // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockStatus clasifica un par (stock, min_stock) en exactamente uno de los
// tres estados. Usada tanto por el ledger de stock como por los reportes.
func StockStatus(stock, minStock int) string {
	switch {
	case stock == 0:
		return StatusNoStock
	case stock <= minStock:
		return StatusLowStock
	default:
		return StatusNormal
	}
}

// IsLowStock indica si el producto está en o por debajo de su umbral.
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Status devuelve la clasificación de stock del producto.
func (p *Product) Status() string {
	return StockStatus(p.Stock, p.MinStock)
}
