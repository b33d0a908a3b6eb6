package dto

// DashboardStatsResponse contadores de la cabecera del dashboard.
type DashboardStatsResponse struct {
	TotalProducts   int `json:"total_products"`
	TotalCategories int `json:"total_categories"`
	LowStockCount   int `json:"low_stock_count"`
}

// CategoryChartResponse datos para el gráfico doughnut de productos por
// categoría: labels[i] corresponde a counts[i].
type CategoryChartResponse struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// StockChartResponse datos para el gráfico de barras de estado de stock.
type StockChartResponse struct {
	Normal   int `json:"normal"`
	LowStock int `json:"low_stock"`
	NoStock  int `json:"no_stock"`
}
