package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/db"
)

// ResourceCounter counts committed rows per owner for each metered kind.
type ResourceCounter struct {
	db *gorm.DB
}

func NewResourceCounter(db *gorm.DB) *ResourceCounter {
	return &ResourceCounter{db: db}
}

func modelFor(kind plan.ResourceKind) (any, error) {
	switch kind {
	case plan.ResourceLinks:
		return &models.LinkModel{}, nil
	case plan.ResourceQRCodes:
		return &models.QRCodeModel{}, nil
	case plan.ResourceSites:
		return &models.SiteModel{}, nil
	case plan.ResourceClients:
		return &models.ClientModel{}, nil
	default:
		return nil, fmt.Errorf("unknown resource kind: %q", kind)
	}
}

func (c *ResourceCounter) Count(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error) {
	model, err := modelFor(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.GetTxFromContext(ctx, c.db).Model(model).Scopes(db.OwnedBy(userID)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	return count, nil
}
