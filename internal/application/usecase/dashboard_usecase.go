package usecase

import (
	"context"
	"fmt"

	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

// DashboardUseCase agregaciones read-only para la cabecera y los gráficos
// del dashboard.
type DashboardUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *DashboardUseCase {
	return &DashboardUseCase{products: products, categories: categories}
}

// Stats devuelve los contadores de la cabecera. Productos y categorías se
// consultan en paralelo.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type categoriesResult struct {
		list []*entity.Category
		err  error
	}

	productsCh := make(chan productsResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		list, err := uc.products.List(ctx)
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.categories.List(ctx)
		categoriesCh <- categoriesResult{list, err}
	}()

	products := <-productsCh
	categories := <-categoriesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}

	lowStock := 0
	for _, p := range products.list {
		if p.IsLowStock() {
			lowStock++
		}
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:   len(products.list),
		TotalCategories: len(categories.list),
		LowStockCount:   lowStock,
	}, nil
}

// CategoryChart cuenta productos por categoría para el gráfico doughnut.
// Las categorías sin productos aparecen con conteo cero.
func (uc *DashboardUseCase) CategoryChart(ctx context.Context) (*dto.CategoryChartResponse, error) {
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int, len(categories))
	for _, p := range products {
		byCategory[p.CategoryID]++
	}

	out := &dto.CategoryChartResponse{
		Labels: make([]string, 0, len(categories)),
		Counts: make([]int, 0, len(categories)),
	}
	for _, c := range categories {
		out.Labels = append(out.Labels, c.Name)
		out.Counts = append(out.Counts, byCategory[c.ID])
	}
	return out, nil
}

// StockChart clasifica el inventario en normal / stock bajo / sin stock para
// el gráfico de barras. La clasificación es la misma regla de tres vías del
// resto del sistema, así que los tres conteos siempre suman el total.
func (uc *DashboardUseCase) StockChart(ctx context.Context) (*dto.StockChartResponse, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.StockChartResponse{}
	for _, p := range products {
		switch p.Status() {
		case entity.StatusNoStock:
			out.NoStock++
		case entity.StatusLowStock:
			out.LowStock++
		default:
			out.Normal++
		}
	}
	return out, nil
}
