package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/db"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type SiteRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSiteRepository(db *gorm.DB, logger logger.Interface) *SiteRepository {
	return &SiteRepository{db: db, logger: logger}
}

func (r *SiteRepository) Create(ctx context.Context, site *monitor.Site) error {
	model := mappers.SiteToModel(site)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create site", "user_id", model.UserID, "error", err)
		return fmt.Errorf("failed to create site: %w", err)
	}
	return site.SetID(model.ID)
}

func (r *SiteRepository) GetByID(ctx context.Context, id uint) (*monitor.Site, error) {
	var model models.SiteModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, monitor.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return mappers.SiteToEntity(&model)
}

func (r *SiteRepository) ListByOwner(ctx context.Context, userID uint) ([]*monitor.Site, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("created_at DESC, id DESC")
	if userID != 0 {
		query = query.Scopes(db.OwnedBy(userID))
	}
	return r.find(query)
}

func (r *SiteRepository) ListActive(ctx context.Context, scope monitor.Scope) ([]*monitor.Site, error) {
	query := db.GetTxFromContext(ctx, r.db).Where("is_active = ?", true).Order("id ASC")
	if !scope.IsAll() {
		query = query.Scopes(db.OwnedBy(scope.UserID))
	}
	return r.find(query)
}

func (r *SiteRepository) find(query *gorm.DB) ([]*monitor.Site, error) {
	var siteModels []*models.SiteModel
	if err := query.Find(&siteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}

	sites := make([]*monitor.Site, 0, len(siteModels))
	for _, m := range siteModels {
		s, err := mappers.SiteToEntity(m)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, nil
}

func (r *SiteRepository) Update(ctx context.Context, site *monitor.Site) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SiteModel{ID: site.ID()}).Updates(map[string]any{
		"url":        site.URL(),
		"label":      site.Label(),
		"is_active":  site.IsActive(),
		"updated_at": site.UpdatedAt(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update site: %w", result.Error)
	}
	return nil
}

func (r *SiteRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("site_id = ?", id).Delete(&models.CheckResultModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete check results: %w", err)
		}
		result := tx.Delete(&models.SiteModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete site: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return monitor.ErrSiteNotFound
		}
		return nil
	})
}
