package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/domain/qrcode"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/toolbox/internal/infrastructure/persistence/models"
	"github.com/orris-inc/toolbox/internal/shared/db"
)

type QRCodeRepository struct {
	db *gorm.DB
}

func NewQRCodeRepository(db *gorm.DB) *QRCodeRepository {
	return &QRCodeRepository{db: db}
}

func (r *QRCodeRepository) Create(ctx context.Context, q *qrcode.QRCode) error {
	model := mappers.QRCodeToModel(q)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create qr code: %w", err)
	}
	q.SetID(model.ID)
	return nil
}

func (r *QRCodeRepository) GetByID(ctx context.Context, id uint) (*qrcode.QRCode, error) {
	var model models.QRCodeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, qrcode.ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("failed to get qr code: %w", err)
	}
	return mappers.QRCodeToEntity(&model), nil
}

func (r *QRCodeRepository) ListByOwner(ctx context.Context, userID uint) ([]*qrcode.QRCode, error) {
	var rows []*models.QRCodeModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list qr codes: %w", err)
	}
	out := make([]*qrcode.QRCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, mappers.QRCodeToEntity(row))
	}
	return out, nil
}

func (r *QRCodeRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.QRCodeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete qr code: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return qrcode.ErrQRCodeNotFound
	}
	return nil
}
