package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sushiymas/inventario-api/internal/application/dto"
	"github.com/sushiymas/inventario-api/internal/application/report"
	"github.com/sushiymas/inventario-api/internal/domain"
)

// ReportHandler maneja los reportes bajo demanda y los semanales persistidos.
type ReportHandler struct {
	compiler       *report.Compiler
	weekly         *report.WeeklyReportUseCase
	pdf            report.PDFGenerator
	restaurantName string
}

// NewReportHandler construye el handler.
func NewReportHandler(
	compiler *report.Compiler,
	weekly *report.WeeklyReportUseCase,
	pdf report.PDFGenerator,
	restaurantName string,
) *ReportHandler {
	return &ReportHandler{
		compiler:       compiler,
		weekly:         weekly,
		pdf:            pdf,
		restaurantName: restaurantName,
	}
}

// Get godoc
// @Summary      Reporte de inventario bajo demanda
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        filter  query  string  false  "Filtro de filas"  Enums(low-stock, no-stock)
// @Success      200  {object}  dto.ReportDocument
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	filter, err := report.ParseFilter(c.Query("filter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filter debe ser low-stock o no-stock"})
	}
	doc, err := h.compiler.Compile(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(doc)
}

// GetPDF godoc
// @Summary      Descargar el reporte bajo demanda en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        filter  query  string  false  "Filtro de filas"  Enums(low-stock, no-stock)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	filter, err := report.ParseFilter(c.Query("filter"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filter debe ser low-stock o no-stock"})
	}
	doc, err := h.compiler.Compile(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	bytes, err := h.pdf.GenerateReportPDF(c.UserContext(), doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	return sendPDF(c, report.Filename(report.OnDemandFilePrefix, doc.GeneratedAt), bytes)
}

// ListWeekly godoc
// @Summary      Listar reportes semanales (más reciente primero)
// @Tags         weekly-reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.WeeklyReportListResponse
// @Router       /api/weekly-reports [get]
func (h *ReportHandler) ListWeekly(c *fiber.Ctx) error {
	out, err := h.weekly.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GenerateWeekly godoc
// @Summary      Generar un reporte semanal manualmente
// @Tags         weekly-reports
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.WeeklyReportResponse
// @Router       /api/weekly-reports/generate [post]
func (h *ReportHandler) GenerateWeekly(c *fiber.Ctx) error {
	out, err := h.weekly.Generate(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// WeeklyPDF godoc
// @Summary      Descargar un reporte semanal almacenado en PDF
// @Tags         weekly-reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del reporte"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/weekly-reports/{id}/pdf [get]
func (h *ReportHandler) WeeklyPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	rep, err := h.weekly.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if rep == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
	}
	doc := report.DocumentFromData(h.restaurantName, rep.CreatedAt, rep.ReportData)
	bytes, err := h.pdf.GenerateReportPDF(c.UserContext(), doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	return sendPDF(c, report.Filename(report.WeeklyFilePrefix, rep.CreatedAt), bytes)
}

func sendPDF(c *fiber.Ctx, filename string, payload []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(payload)
}
