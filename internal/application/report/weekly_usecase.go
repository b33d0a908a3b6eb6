package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/application/notification"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

// WeeklyReportUseCase genera y consulta los snapshots semanales persistidos.
// Lo invocan tanto el scheduler como el disparo manual desde la API; ambos
// caminos persisten el inventario completo, sin filtro.
type WeeklyReportUseCase struct {
	compiler *Compiler
	reports  repository.WeeklyReportRepository
	sink     *notification.Sink
	log      zerolog.Logger
	now      func() time.Time
}

// NewWeeklyReportUseCase construye el caso de uso.
func NewWeeklyReportUseCase(
	compiler *Compiler,
	reports repository.WeeklyReportRepository,
	sink *notification.Sink,
	log zerolog.Logger,
) *WeeklyReportUseCase {
	return &WeeklyReportUseCase{
		compiler: compiler,
		reports:  reports,
		sink:     sink,
		log:      log,
		now:      time.Now,
	}
}

// Generate compila el snapshot sin filtro y lo persiste como nueva fila de
// weekly_reports. La fila es inmutable: nunca se actualiza ni se borra.
func (uc *WeeklyReportUseCase) Generate(ctx context.Context) (*dto.WeeklyReportResponse, error) {
	doc, err := uc.compiler.Compile(ctx, FilterNone)
	if err != nil {
		uc.sink.Error("Error al generar reporte semanal: " + err.Error())
		return nil, err
	}

	now := uc.now()
	data := entity.ReportData{
		Date:             now.Format(time.RFC3339),
		TotalProducts:    doc.Summary.Total,
		LowStockProducts: doc.Summary.LowStock,
		Products:         make([]entity.ReportProduct, 0, len(doc.Rows)),
	}
	for _, r := range doc.Rows {
		data.Products = append(data.Products, entity.ReportProduct{
			Name:        r.Name,
			Category:    r.Category,
			Stock:       r.Stock,
			MinStock:    r.MinStock,
			Description: r.Description,
			Status:      r.Status,
		})
	}

	rep := &entity.WeeklyReport{
		ID:         uuid.New().String(),
		CreatedAt:  now,
		ReportData: data,
	}
	if err := uc.reports.Create(ctx, rep); err != nil {
		uc.sink.Error("Error al generar reporte semanal: " + err.Error())
		return nil, err
	}

	uc.log.Info().
		Str("report_id", rep.ID).
		Int("total_products", data.TotalProducts).
		Int("low_stock_products", data.LowStockProducts).
		Msg("reporte semanal persistido")
	uc.sink.Success("¡Reporte semanal generado y guardado exitosamente!")

	return &dto.WeeklyReportResponse{
		ID:               rep.ID,
		CreatedAt:        rep.CreatedAt,
		TotalProducts:    data.TotalProducts,
		LowStockProducts: data.LowStockProducts,
	}, nil
}

// List devuelve los reportes semanales, más reciente primero.
func (uc *WeeklyReportUseCase) List(ctx context.Context) (*dto.WeeklyReportListResponse, error) {
	list, err := uc.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WeeklyReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.WeeklyReportResponse{
			ID:               r.ID,
			CreatedAt:        r.CreatedAt,
			TotalProducts:    r.ReportData.TotalProducts,
			LowStockProducts: r.ReportData.LowStockProducts,
		})
	}
	return &dto.WeeklyReportListResponse{Items: items}, nil
}

// GetByID devuelve un reporte almacenado, o nil si no existe.
func (uc *WeeklyReportUseCase) GetByID(ctx context.Context, id string) (*entity.WeeklyReport, error) {
	return uc.reports.GetByID(ctx, id)
}
