package report

import (
	"context"
	"fmt"
	"time"

	"github.com/sushiymas/inventario-api/internal/application/dto"
)

// PDFGenerator puerto hacia el colaborador de render: consume el documento
// neutral y devuelve los bytes del archivo descargable.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, doc *dto.ReportDocument) ([]byte, error)
}

// Prefijos de archivo para las descargas.
const (
	OnDemandFilePrefix = "inventario_sushi"
	WeeklyFilePrefix   = "reporte_semanal_sushi"
)

// Filename arma el nombre de descarga con la convención <prefijo>_<fecha-ISO>.pdf.
func Filename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", prefix, t.Format("2006-01-02"))
}
