package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushiymas/inventario-api/internal/domain/entity"
)

func TestStockStatus_Clasificacion(t *testing.T) {
	cases := []struct {
		name     string
		stock    int
		minStock int
		want     string
	}{
		{"stock cero siempre es Sin Stock", 0, 5, entity.StatusNoStock},
		{"stock cero con umbral cero sigue siendo Sin Stock", 0, 0, entity.StatusNoStock},
		{"stock igual al umbral es Stock Bajo", 5, 5, entity.StatusLowStock},
		{"stock debajo del umbral es Stock Bajo", 3, 5, entity.StatusLowStock},
		{"stock justo encima del umbral es Normal", 6, 5, entity.StatusNormal},
		{"stock alto es Normal", 100, 5, entity.StatusNormal},
		{"umbral cero con stock positivo es Normal", 1, 0, entity.StatusNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.StockStatus(tc.stock, tc.minStock))
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	p := &entity.Product{Stock: 5, MinStock: 5}
	assert.True(t, p.IsLowStock(), "stock igual al umbral cuenta como bajo")

	p.Stock = 6
	assert.False(t, p.IsLowStock())

	// Sin stock también está en o por debajo del umbral.
	p.Stock = 0
	assert.True(t, p.IsLowStock())
}

func TestProduct_Status(t *testing.T) {
	p := &entity.Product{Stock: 0, MinStock: 0}
	assert.Equal(t, entity.StatusNoStock, p.Status(),
		"con umbral 0 la prioridad de Sin Stock se mantiene")
}
