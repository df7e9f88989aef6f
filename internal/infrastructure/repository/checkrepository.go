package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/db"
)

// CheckRepository stores probe results. Each Insert is its own statement so
// one failed write never affects another target's result.
type CheckRepository struct {
	db *gorm.DB
}

func NewCheckRepository(db *gorm.DB) *CheckRepository {
	return &CheckRepository{db: db}
}

func (r *CheckRepository) Insert(ctx context.Context, result *monitor.CheckResult) error {
	model := mappers.CheckResultToModel(result)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert check result: %w", err)
	}
	result.SetID(model.ID)
	return nil
}

func (r *CheckRepository) ListBySite(ctx context.Context, siteID uint, limit int) ([]*monitor.CheckResult, error) {
	var rows []*models.CheckResultModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("site_id = ?", siteID).
		Order("checked_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list check results: %w", err)
	}
	return toCheckResults(rows), nil
}

// LatestBySites takes the highest id per site, which is the last insert.
func (r *CheckRepository) LatestBySites(ctx context.Context, siteIDs []uint) (map[uint]*monitor.CheckResult, error) {
	out := make(map[uint]*monitor.CheckResult, len(siteIDs))
	if len(siteIDs) == 0 {
		return out, nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	latestIDs := tx.Model(&models.CheckResultModel{}).
		Select("MAX(id)").
		Where("site_id IN ?", siteIDs).
		Group("site_id")

	var rows []*models.CheckResultModel
	if err := tx.Where("id IN (?)", latestIDs).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load latest check results: %w", err)
	}
	for _, row := range rows {
		out[row.SiteID] = mappers.CheckResultToEntity(row)
	}
	return out, nil
}

func (r *CheckRepository) StatsSince(ctx context.Context, siteIDs []uint, since time.Time) (map[uint]monitor.UptimeStats, error) {
	out := make(map[uint]monitor.UptimeStats, len(siteIDs))
	if len(siteIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		SiteID uint
		Up     int64
		Total  int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.CheckResultModel{}).
		Select("site_id, SUM(CASE WHEN is_up THEN 1 ELSE 0 END) AS up, COUNT(*) AS total").
		Where("site_id IN ?", siteIDs).
		Scopes(db.CheckedSince(since.UTC())).
		Group("site_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate uptime: %w", err)
	}
	for _, row := range rows {
		out[row.SiteID] = monitor.UptimeStats{SiteID: row.SiteID, Up: row.Up, Total: row.Total}
	}
	return out, nil
}

// DeleteOlderThan removes results strictly before cutoff.
func (r *CheckRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Where("checked_at < ?", cutoff.UTC()).Delete(&models.CheckResultModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune check results: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toCheckResults(rows []*models.CheckResultModel) []*monitor.CheckResult {
	out := make([]*monitor.CheckResult, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.CheckResultToEntity(row))
	}
	return out
}
