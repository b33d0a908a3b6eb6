// Package pdf implementa el render del reporte de inventario como documento
// descargable.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: <Restaurante> - Reporte de Inventario              │
//	│  Fecha / Hora de generación                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN EJECUTIVO: total de productos / stock bajo         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Categoría | Stock | Descripción | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del sistema de inventarios                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sushiymas/inventario-api/internal/application/dto"
	appreport "github.com/sushiymas/inventario-api/internal/application/report"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 52, Green: 73, Blue: 185}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 245, Green: 245, Blue: 245}
)

var _ appreport.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del documento y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, doc *dto.ReportDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(doc.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for i, r := range doc.Rows {
		m.AddRows(tableDetailRow(r, i%2 == 1))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(doc *dto.ReportDocument) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(
				text.New(doc.Title, props.Text{
					Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New("Fecha: "+doc.GeneratedAt.Format("02/01/2006"), props.Text{
					Size: 10, Color: colorGray, Top: 1,
				}),
				text.New("Hora: "+doc.GeneratedAt.Format("15:04:05"), props.Text{
					Size: 10, Color: colorGray, Top: 6,
				}),
			),
		),
	}
}

func summaryRows(s dto.ReportSummary) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(12).Add(
				text.New("Resumen Ejecutivo:", props.Text{
					Style: fontstyle.Bold, Size: 12, Top: 1,
				}),
			),
		),
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Total de Productos: %d", s.Total), props.Text{
					Size: 10, Left: 5, Top: 1,
				}),
				text.New(fmt.Sprintf("Productos con Stock Bajo: %d", s.LowStock), props.Text{
					Size: 10, Left: 5, Top: 7,
				}),
			),
		),
	}
}

func tableHeaderRow() core.Row {
	header := func(size int, label string, al align.Type) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorWhite, Align: al, Top: 1.5,
			}),
		)
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		header(3, "Producto", align.Left),
		header(2, "Categoría", align.Left),
		header(1, "Stock", align.Center),
		header(4, "Descripción", align.Left),
		header(2, "Estado", align.Center),
	)
}

func tableDetailRow(r dto.ReportRow, stripe bool) core.Row {
	cell := func(size int, value string, al align.Type) core.Col {
		return col.New(size).Add(
			text.New(value, props.Text{Size: 9, Align: al, Top: 1.5}),
		)
	}
	out := row.New(7).Add(
		cell(3, r.Name, align.Left),
		cell(2, r.Category, align.Left),
		cell(1, strconv.Itoa(r.Stock), align.Center),
		cell(4, r.Description, align.Left),
		cell(2, r.Status, align.Center),
	)
	if stripe {
		out.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return out
}

func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Generado por Sistema de Inventarios - Sushi y más...", props.Text{
				Size: 10, Color: colorGray, Top: 1,
			}),
		),
	)
}
