// Package inventory contiene el ledger de stock: la única vía para mutar
// existencias de un producto.
package inventory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sushiymas/inventario-api/internal/application/notification"
	"github.com/sushiymas/inventario-api/internal/domain"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

// StockLedger aplica ajustes de stock manteniendo el invariante de
// no-negatividad y emitiendo alertas de stock bajo.
//
// El mutex serializa el ciclo leer-calcular-escribir: dos ajustes
// simultáneos sobre el mismo inventario no pueden pisarse.
type StockLedger struct {
	mu       sync.Mutex
	products repository.ProductRepository
	sink     *notification.Sink
	log      zerolog.Logger
}

// NewStockLedger construye el ledger.
func NewStockLedger(products repository.ProductRepository, sink *notification.Sink, log zerolog.Logger) *StockLedger {
	return &StockLedger{products: products, sink: sink, log: log}
}

// Adjust aplica delta al stock del producto.
//
//   - newStock < 0: no persiste nada, emite una notificación de error y
//     retorna domain.ErrInsufficientStock; el estado queda intacto.
//   - newStock <= min_stock: persiste y emite la alerta de stock bajo con el
//     nombre del producto y la nueva cantidad.
//
// Devuelve el producto ya actualizado.
func (l *StockLedger) Adjust(ctx context.Context, productID string, delta int) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	product, err := l.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newStock := product.Stock + delta
	if newStock < 0 {
		l.log.Warn().
			Str("product_id", productID).
			Int("stock", product.Stock).
			Int("delta", delta).
			Msg("ajuste rechazado: stock negativo")
		l.sink.Error("Las existencias no pueden ser negativas.")
		return nil, domain.ErrInsufficientStock
	}

	if err := l.products.UpdateStock(ctx, productID, newStock); err != nil {
		return nil, err
	}
	product.Stock = newStock
	product.UpdatedAt = time.Now()

	if product.IsLowStock() {
		l.sink.Error(fmt.Sprintf("¡Alerta! El producto %q tiene stock bajo (%d).", product.Name, newStock))
	}

	l.log.Info().
		Str("product_id", productID).
		Int("delta", delta).
		Int("stock", newStock).
		Str("status", product.Status()).
		Msg("stock ajustado")

	return product, nil
}
