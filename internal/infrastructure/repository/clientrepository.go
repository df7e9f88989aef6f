package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/domain/client"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/db"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	model := mappers.ClientToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return mappers.ClientToEntity(&model), nil
}

func (r *ClientRepository) ListByOwner(ctx context.Context, userID uint) ([]*client.Client, error) {
	var rows []*models.ClientModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("name ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	out := make([]*client.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.ClientToEntity(row))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	model := mappers.ClientToModel(c)
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ClientModel{ID: model.ID}).
		Select("name", "email", "phone", "address", "city", "notes", "updated_at").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ClientModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return client.ErrClientNotFound
	}
	return nil
}
