package repository

import (
	"context"

	"github.com/sushiymas/inventario-api/internal/domain/entity"
)

// WeeklyReportRepository define el puerto de persistencia para WeeklyReport.
// Log append-only: no hay Update ni Delete.
type WeeklyReportRepository interface {
	Create(ctx context.Context, report *entity.WeeklyReport) error
	GetByID(ctx context.Context, id string) (*entity.WeeklyReport, error)
	List(ctx context.Context) ([]*entity.WeeklyReport, error) // created_at DESC
}
