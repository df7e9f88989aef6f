package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/db"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(ctx context.Context, l *link.Link) error {
	model := mappers.LinkToModel(l)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return link.ErrShortCodeTaken
		}
		return fmt.Errorf("failed to create link: %w", err)
	}
	l.SetID(model.ID)
	return nil
}

func (r *LinkRepository) GetByID(ctx context.Context, id uint) (*link.Link, error) {
	var model models.LinkModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, link.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return mappers.LinkToEntity(&model), nil
}

func (r *LinkRepository) GetByShortCode(ctx context.Context, code string) (*link.Link, error) {
	var model models.LinkModel
	if err := db.GetTxFromContext(ctx, r.db).Where("short_code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, link.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get link by code: %w", err)
	}
	return mappers.LinkToEntity(&model), nil
}

func (r *LinkRepository) ListByOwner(ctx context.Context, userID uint) ([]*link.Link, error) {
	query := db.GetTxFromContext(ctx, r.db).Order("created_at DESC, id DESC")
	if userID != 0 {
		query = query.Scopes(db.OwnedBy(userID))
	}

	var rows []*models.LinkModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	out := make([]*link.Link, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.LinkToEntity(row))
	}
	return out, nil
}

// Update persists editable fields. The click counter is only changed by
// RecordClick.
func (r *LinkRepository) Update(ctx context.Context, l *link.Link) error {
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.LinkModel{ID: l.ID()}).Updates(map[string]any{
		"original_url": l.OriginalURL(),
		"title":        l.Title(),
		"is_active":    l.IsActive(),
		"updated_at":   l.UpdatedAt(),
	}).Error; err != nil {
		return fmt.Errorf("failed to update link: %w", err)
	}
	return nil
}

func (r *LinkRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&models.ClickEventModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete click events: %w", err)
		}
		result := tx.Delete(&models.LinkModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete link: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return link.ErrLinkNotFound
		}
		return nil
	})
}

func (r *LinkRepository) RecordClick(ctx context.Context, event *link.ClickEvent) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.LinkModel{}).
			Where("id = ?", event.LinkID).
			UpdateColumn("clicks", gorm.Expr("clicks + ?", 1))
		if result.Error != nil {
			return fmt.Errorf("failed to increment clicks: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return link.ErrLinkNotFound
		}

		model := &models.ClickEventModel{
			LinkID:    event.LinkID,
			ClickedAt: event.ClickedAt.UTC(),
			Referer:   truncate(event.Referer, 1024),
			UserAgent: truncate(event.UserAgent, 512),
		}
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to record click event: %w", err)
		}
		event.ID = model.ID
		return nil
	})
}

func (r *LinkRepository) ListClicks(ctx context.Context, linkID uint, limit int) ([]*link.ClickEvent, error) {
	var rows []*models.ClickEventModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("link_id = ?", linkID).
		Order("clicked_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list click events: %w", err)
	}
	out := make([]*link.ClickEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.ClickEventToEntity(row))
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
