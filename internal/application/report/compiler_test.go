package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
)

// stubProductRepo devuelve un conjunto fijo de productos con categoría.
type stubProductRepo struct {
	joined []*entity.ProductWithCategory
	err    error
}

func (s *stubProductRepo) Create(context.Context, *entity.Product) error  { return nil }
func (s *stubProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(context.Context, *entity.Product) error      { return nil }
func (s *stubProductRepo) UpdateStock(context.Context, string, int) error     { return nil }
func (s *stubProductRepo) List(context.Context) ([]*entity.Product, error)    { return nil, nil }
func (s *stubProductRepo) Delete(context.Context, string) error               { return nil }
func (s *stubProductRepo) ListWithCategory(context.Context) ([]*entity.ProductWithCategory, error) {
	return s.joined, s.err
}

func withCategory(name, categoryName string, stock, minStock int, description string) *entity.ProductWithCategory {
	return &entity.ProductWithCategory{
		Product: entity.Product{
			Name:        name,
			Stock:       stock,
			MinStock:    minStock,
			Description: description,
		},
		Category: entity.CategoryRef{Name: categoryName, Valid: categoryName != ""},
	}
}

func testInventory() []*entity.ProductWithCategory {
	return []*entity.ProductWithCategory{
		withCategory("Salmón", "Pescados", 10, 5, "fresco"),
		withCategory("Arroz", "Granos", 3, 5, ""),
		withCategory("Nori", "", 0, 5, "alga"),
	}
}

func newTestCompiler(repo *stubProductRepo) *Compiler {
	c := NewCompiler(repo, "Sushi y más...")
	c.now = func() time.Time { return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestCompiler_SinFiltro(t *testing.T) {
	c := newTestCompiler(&stubProductRepo{joined: testInventory()})

	doc, err := c.Compile(context.Background(), FilterNone)
	require.NoError(t, err)

	assert.Equal(t, "Sushi y más... - Reporte de Inventario", doc.Title)
	assert.Equal(t, 3, doc.Summary.Total)
	assert.Equal(t, 2, doc.Summary.LowStock, "Arroz (3<=5) y Nori (0<=5) están bajos")
	require.Len(t, doc.Rows, 3)

	assert.Equal(t, "Normal", doc.Rows[0].Status)
	assert.Equal(t, "Stock Bajo", doc.Rows[1].Status)
	assert.Equal(t, "Sin Stock", doc.Rows[2].Status, "stock cero gana sobre stock bajo")
}

// El filtro recorta las filas pero el resumen sigue contando el inventario
// completo.
func TestCompiler_ResumenIndependienteDelFiltro(t *testing.T) {
	repo := &stubProductRepo{joined: testInventory()}

	for _, filter := range []Filter{FilterNone, FilterLowStock, FilterNoStock} {
		doc, err := newTestCompiler(repo).Compile(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, 3, doc.Summary.Total, "filtro %q", filter)
		assert.Equal(t, 2, doc.Summary.LowStock, "filtro %q", filter)
	}
}

func TestCompiler_FiltroStockBajo(t *testing.T) {
	c := newTestCompiler(&stubProductRepo{joined: testInventory()})

	doc, err := c.Compile(context.Background(), FilterLowStock)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 2, "incluye también los productos sin stock")
	assert.Equal(t, "Arroz", doc.Rows[0].Name)
	assert.Equal(t, "Nori", doc.Rows[1].Name)
}

func TestCompiler_FiltroSinStock(t *testing.T) {
	c := newTestCompiler(&stubProductRepo{joined: testInventory()})

	doc, err := c.Compile(context.Background(), FilterNoStock)
	require.NoError(t, err)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Nori", doc.Rows[0].Name)
}

func TestCompiler_RespaldosDeCategoriaYDescripcion(t *testing.T) {
	c := newTestCompiler(&stubProductRepo{joined: testInventory()})

	doc, err := c.Compile(context.Background(), FilterNone)
	require.NoError(t, err)

	assert.Equal(t, "Granos", doc.Rows[1].Category)
	assert.Equal(t, "N/A", doc.Rows[1].Description, "descripción vacía se reemplaza")
	assert.Equal(t, "Sin categoría", doc.Rows[2].Category, "referencia ausente se reemplaza")
	assert.Equal(t, "alga", doc.Rows[2].Description)
}

func TestCompiler_InventarioVacio(t *testing.T) {
	c := newTestCompiler(&stubProductRepo{})

	doc, err := c.Compile(context.Background(), FilterNone)
	require.NoError(t, err)
	assert.Zero(t, doc.Summary.Total)
	assert.Zero(t, doc.Summary.LowStock)
	assert.Empty(t, doc.Rows)
}

func TestParseFilter(t *testing.T) {
	for _, valid := range []string{"", "low-stock", "no-stock"} {
		f, err := ParseFilter(valid)
		require.NoError(t, err)
		assert.Equal(t, Filter(valid), f)
	}

	_, err := ParseFilter("todo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentFromData_TituloSemanal(t *testing.T) {
	createdAt := time.Date(2026, time.August, 24, 0, 0, 5, 0, time.UTC)
	data := entity.ReportData{
		Date:             createdAt.Format(time.RFC3339),
		TotalProducts:    2,
		LowStockProducts: 1,
		Products: []entity.ReportProduct{
			{Name: "Salmón", Category: "Pescados", Stock: 10, MinStock: 5, Description: "fresco", Status: "Normal"},
			{Name: "Nori", Category: "Sin categoría", Stock: 0, MinStock: 5, Description: "N/A", Status: "Sin Stock"},
		},
	}

	doc := DocumentFromData("Sushi y más...", createdAt, data)
	assert.Equal(t, "Sushi y más... - Reporte Semanal de Inventario", doc.Title)
	assert.Equal(t, createdAt, doc.GeneratedAt)
	assert.Equal(t, 2, doc.Summary.Total)
	assert.Equal(t, 1, doc.Summary.LowStock)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "Sin Stock", doc.Rows[1].Status)
}
