package report

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushiymas/inventario-api/internal/application/notification"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
)

type memWeeklyRepo struct {
	created []*entity.WeeklyReport
	err     error
}

func (r *memWeeklyRepo) Create(_ context.Context, rep *entity.WeeklyReport) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, rep)
	return nil
}

func (r *memWeeklyRepo) GetByID(_ context.Context, id string) (*entity.WeeklyReport, error) {
	for _, rep := range r.created {
		if rep.ID == id {
			return rep, nil
		}
	}
	return nil, nil
}

func (r *memWeeklyRepo) List(context.Context) ([]*entity.WeeklyReport, error) {
	out := make([]*entity.WeeklyReport, len(r.created))
	for i, rep := range r.created {
		out[len(r.created)-1-i] = rep
	}
	return out, nil
}

func newTestWeeklyUC(products *stubProductRepo, reports *memWeeklyRepo, sink *notification.Sink) *WeeklyReportUseCase {
	uc := NewWeeklyReportUseCase(newTestCompiler(products), reports, sink, zerolog.Nop())
	uc.now = func() time.Time { return time.Date(2026, time.August, 31, 0, 0, 2, 0, time.UTC) }
	return uc
}

func TestWeeklyReportUseCase_GeneratePersisteSnapshotCompleto(t *testing.T) {
	reports := &memWeeklyRepo{}
	sink := notification.NewSink(time.Hour)
	defer sink.Close()
	uc := newTestWeeklyUC(&stubProductRepo{joined: testInventory()}, reports, sink)

	resp, err := uc.Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, reports.created, 1)

	rep := reports.created[0]
	assert.Equal(t, resp.ID, rep.ID)
	assert.Equal(t, 3, rep.ReportData.TotalProducts, "siempre sin filtro")
	assert.Equal(t, 2, rep.ReportData.LowStockProducts)
	require.Len(t, rep.ReportData.Products, 3)
	assert.Equal(t, "Sin categoría", rep.ReportData.Products[2].Category)
	assert.Equal(t, "Sin Stock", rep.ReportData.Products[2].Status)

	_, parseErr := time.Parse(time.RFC3339, rep.ReportData.Date)
	assert.NoError(t, parseErr, "la fecha del snapshot es ISO-8601")

	active := sink.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notification.SeveritySuccess, active[0].Severity)
	assert.Equal(t, "¡Reporte semanal generado y guardado exitosamente!", active[0].Message)
}

// La forma JSON persistida debe mantener las claves que leen las filas
// históricas de weekly_reports.
func TestWeeklyReportUseCase_FormaJSONCompatible(t *testing.T) {
	reports := &memWeeklyRepo{}
	sink := notification.NewSink(time.Hour)
	defer sink.Close()
	uc := newTestWeeklyUC(&stubProductRepo{joined: testInventory()}, reports, sink)

	_, err := uc.Generate(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(reports.created[0].ReportData)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"date", "totalProducts", "lowStockProducts", "products"} {
		assert.Contains(t, decoded, key)
	}

	products := decoded["products"].([]any)
	first := products[0].(map[string]any)
	for _, key := range []string{"name", "category", "stock", "min_stock", "description", "status"} {
		assert.Contains(t, first, key)
	}
}

func TestWeeklyReportUseCase_ErrorDePersistenciaNotifica(t *testing.T) {
	reports := &memWeeklyRepo{err: errors.New("conexión perdida")}
	sink := notification.NewSink(time.Hour)
	defer sink.Close()
	uc := newTestWeeklyUC(&stubProductRepo{joined: testInventory()}, reports, sink)

	_, err := uc.Generate(context.Background())
	require.Error(t, err)

	active := sink.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notification.SeverityError, active[0].Severity)
	assert.Contains(t, active[0].Message, "Error al generar reporte semanal")
}

func TestWeeklyReportUseCase_ListMasRecientePrimero(t *testing.T) {
	reports := &memWeeklyRepo{}
	sink := notification.NewSink(time.Hour)
	defer sink.Close()
	uc := newTestWeeklyUC(&stubProductRepo{joined: testInventory()}, reports, sink)

	first, err := uc.Generate(context.Background())
	require.NoError(t, err)
	second, err := uc.Generate(context.Background())
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, second.ID, list.Items[0].ID)
	assert.Equal(t, first.ID, list.Items[1].ID)
}

func TestWeeklyReportUseCase_GetByIDInexistente(t *testing.T) {
	sink := notification.NewSink(time.Hour)
	defer sink.Close()
	uc := newTestWeeklyUC(&stubProductRepo{}, &memWeeklyRepo{}, sink)

	rep, err := uc.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, rep)
}
