package entity

import "time"

// WeeklyReport fila persistida en weekly_reports. Inmutable una vez creada:
// la aplicación solo inserta y lee, nunca actualiza ni borra.
type WeeklyReport struct {
	ID         string
	CreatedAt  time.Time
	ReportData ReportData
}

// ReportData es la forma JSON almacenada en weekly_reports.report_data.
// Las claves deben permanecer compatibles hacia atrás: la vista de reportes
// las lee tal cual desde filas históricas.
type ReportData struct {
	Date             string          `json:"date"` // ISO-8601
	TotalProducts    int             `json:"totalProducts"`
	LowStockProducts int             `json:"lowStockProducts"`
	Products         []ReportProduct `json:"products"`
}

// ReportProduct una fila de producto dentro del snapshot.
type ReportProduct struct {
	Name        string `json:"name"`
	Category    string `json:"category"` // "Sin categoría" si la referencia no existe
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	Description string `json:"description"` // "N/A" si está vacía
	Status      string `json:"status"`      // Sin Stock | Stock Bajo | Normal
}
