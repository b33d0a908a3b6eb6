package dto

import "time"

// ReportSummary conteos ejecutivos del snapshot. Siempre calculados sobre el
// inventario completo, independientemente del filtro de filas activo.
type ReportSummary struct {
	Total    int `json:"total"`
	LowStock int `json:"lowStock"`
}

// ReportRow una fila visible del reporte.
type ReportRow struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// ReportDocument documento neutral de reporte: lo consume tanto la tabla en
// pantalla como el generador de PDF, sin saber nada de cómo se renderiza.
type ReportDocument struct {
	Title       string        `json:"title"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Summary     ReportSummary `json:"summary"`
	Rows        []ReportRow   `json:"rows"`
}

// WeeklyReportResponse fila de weekly_reports en respuestas de listado.
type WeeklyReportResponse struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	TotalProducts    int       `json:"totalProducts"`
	LowStockProducts int       `json:"lowStockProducts"`
}

// WeeklyReportListResponse listado de reportes semanales (más reciente primero).
type WeeklyReportListResponse struct {
	Items []WeeklyReportResponse `json:"items"`
}
