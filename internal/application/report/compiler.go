// Package report contiene el compilador de snapshots de inventario, el caso
// de uso de reportes semanales y el scheduler que los dispara cada lunes.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

// Filter filtro de filas del reporte. Solo recorta la lista visible; los
// conteos del resumen siempre se calculan sobre el inventario completo.
type Filter string

// Filtros soportados.
const (
	FilterNone     Filter = ""
	FilterLowStock Filter = "low-stock"
	FilterNoStock  Filter = "no-stock"
)

// ParseFilter valida el valor recibido por query string.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterNone, FilterLowStock, FilterNoStock:
		return Filter(s), nil
	default:
		return FilterNone, domain.ErrInvalidInput
	}
}

// Respaldos para campos ausentes, resueltos una sola vez al armar el snapshot.
const (
	unassignedCategory = "Sin categoría"
	emptyDescription   = "N/A"
)

// Compiler arma snapshots puntuales del inventario en un documento neutral,
// independiente del destino de render (tabla en pantalla o PDF).
type Compiler struct {
	products       repository.ProductRepository
	restaurantName string
	now            func() time.Time
}

// NewCompiler construye el compilador.
func NewCompiler(products repository.ProductRepository, restaurantName string) *Compiler {
	return &Compiler{
		products:       products,
		restaurantName: restaurantName,
		now:            time.Now,
	}
}

// Compile obtiene todos los productos con su categoría y produce el documento.
// El resumen (total y stock bajo) sale del conjunto sin filtrar; el filtro
// decide únicamente qué filas se incluyen.
func (c *Compiler) Compile(ctx context.Context, filter Filter) (*dto.ReportDocument, error) {
	products, err := c.products.ListWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("compilar reporte: %w", err)
	}

	summary := dto.ReportSummary{Total: len(products)}
	for _, p := range products {
		if p.IsLowStock() {
			summary.LowStock++
		}
	}

	rows := make([]dto.ReportRow, 0, len(products))
	for _, p := range products {
		if !matches(filter, &p.Product) {
			continue
		}
		rows = append(rows, toRow(p))
	}

	return &dto.ReportDocument{
		Title:       fmt.Sprintf("%s - Reporte de Inventario", c.restaurantName),
		GeneratedAt: c.now(),
		Summary:     summary,
		Rows:        rows,
	}, nil
}

func matches(filter Filter, p *entity.Product) bool {
	switch filter {
	case FilterLowStock:
		return p.IsLowStock()
	case FilterNoStock:
		return p.Stock == 0
	default:
		return true
	}
}

func toRow(p *entity.ProductWithCategory) dto.ReportRow {
	category := unassignedCategory
	if p.Category.Valid {
		category = p.Category.Name
	}
	description := p.Description
	if description == "" {
		description = emptyDescription
	}
	return dto.ReportRow{
		Name:        p.Name,
		Category:    category,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Description: description,
		Status:      p.Status(),
	}
}

// DocumentFromData reconstruye un documento renderizable a partir de un
// snapshot semanal almacenado, para re-generar su PDF bajo demanda.
func DocumentFromData(restaurantName string, createdAt time.Time, data entity.ReportData) *dto.ReportDocument {
	rows := make([]dto.ReportRow, 0, len(data.Products))
	for _, p := range data.Products {
		rows = append(rows, dto.ReportRow{
			Name:        p.Name,
			Category:    p.Category,
			Stock:       p.Stock,
			MinStock:    p.MinStock,
			Description: p.Description,
			Status:      p.Status,
		})
	}
	return &dto.ReportDocument{
		Title:       fmt.Sprintf("%s - Reporte Semanal de Inventario", restaurantName),
		GeneratedAt: createdAt,
		Summary: dto.ReportSummary{
			Total:    data.TotalProducts,
			LowStock: data.LowStockProducts,
		},
		Rows: rows,
	}
}
