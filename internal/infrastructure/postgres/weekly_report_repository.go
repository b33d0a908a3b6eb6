package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sushiymas/inventario-api/internal/domain/entity"
	"github.com/sushiymas/inventario-api/internal/domain/repository"
)

var _ repository.WeeklyReportRepository = (*WeeklyReportRepo)(nil)

// WeeklyReportRepo implementación del puerto WeeklyReportRepository sobre
// PostgreSQL. report_data es jsonb; la fila nunca se actualiza ni se borra.
type WeeklyReportRepo struct {
	q Querier
}

// NewWeeklyReportRepository construye el adaptador de persistencia para reportes semanales.
func NewWeeklyReportRepository(q Querier) *WeeklyReportRepo {
	return &WeeklyReportRepo{q: q}
}

// Create inserta un snapshot. Append-only: no existe Update ni Delete.
func (r *WeeklyReportRepo) Create(ctx context.Context, report *entity.WeeklyReport) error {
	data, err := json.Marshal(report.ReportData)
	if err != nil {
		return fmt.Errorf("marshal report_data: %w", err)
	}
	query := `INSERT INTO weekly_reports (id, created_at, report_data) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(ctx, query, report.ID, report.CreatedAt, data); err != nil {
		return fmt.Errorf("insert weekly report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte por ID, o nil si no existe.
func (r *WeeklyReportRepo) GetByID(ctx context.Context, id string) (*entity.WeeklyReport, error) {
	query := `SELECT id, created_at, report_data FROM weekly_reports WHERE id = $1`
	var rep entity.WeeklyReport
	var data []byte
	err := r.q.QueryRow(ctx, query, id).Scan(&rep.ID, &rep.CreatedAt, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get weekly report: %w", err)
	}
	if err := json.Unmarshal(data, &rep.ReportData); err != nil {
		return nil, fmt.Errorf("unmarshal report_data: %w", err)
	}
	return &rep, nil
}

// List lista los reportes ordenados por created_at descendente.
func (r *WeeklyReportRepo) List(ctx context.Context) ([]*entity.WeeklyReport, error) {
	query := `SELECT id, created_at, report_data FROM weekly_reports ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list weekly reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.WeeklyReport
	for rows.Next() {
		var rep entity.WeeklyReport
		var data []byte
		if err := rows.Scan(&rep.ID, &rep.CreatedAt, &data); err != nil {
			return nil, fmt.Errorf("scan weekly report: %w", err)
		}
		if err := json.Unmarshal(data, &rep.ReportData); err != nil {
			return nil, fmt.Errorf("unmarshal report_data: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
