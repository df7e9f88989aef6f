// Package usecases stores QR code definitions. Images are rendered by the
// browser from the saved content and size.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/qrcode"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

type QuotaGuard interface {
	Require(ctx context.Context, userID uint, kind plan.ResourceKind) error
}

type QRCodeResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	Label     string    `json:"label,omitempty"`
	Size      int       `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(q *qrcode.QRCode) *QRCodeResponse {
	return &QRCodeResponse{
		ID:        q.ID(),
		UserID:    q.UserID(),
		Content:   q.Content(),
		Label:     q.Label(),
		Size:      q.Size(),
		CreatedAt: q.CreatedAt(),
	}
}

type CreateQRCodeCommand struct {
	UserID  uint
	Content string
	Label   string
	Size    int
}

type CreateQRCodeUseCase struct {
	repo   qrcode.Repository
	quota  QuotaGuard
	logger logger.Interface
}

func NewCreateQRCodeUseCase(repo qrcode.Repository, quota QuotaGuard, logger logger.Interface) *CreateQRCodeUseCase {
	return &CreateQRCodeUseCase{repo: repo, quota: quota, logger: logger}
}

func (uc *CreateQRCodeUseCase) Execute(ctx context.Context, cmd CreateQRCodeCommand) (*QRCodeResponse, error) {
	q, err := qrcode.NewQRCode(cmd.UserID, cmd.Content, cmd.Label, cmd.Size)
	if err != nil {
		if errors.Is(err, qrcode.ErrContentRequired) || errors.Is(err, qrcode.ErrContentTooLong) {
			return nil, apperrors.NewValidationError(err.Error())
		}
		return nil, fmt.Errorf("failed to build qr code: %w", err)
	}

	if err := uc.quota.Require(ctx, cmd.UserID, plan.ResourceQRCodes); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, q); err != nil {
		uc.logger.Errorw("failed to persist qr code", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to save qr code: %w", err)
	}

	uc.logger.Infow("qr code created", "qr_code_id", q.ID(), "user_id", cmd.UserID)
	return toResponse(q), nil
}

type ListQRCodesUseCase struct {
	repo qrcode.Repository
}

func NewListQRCodesUseCase(repo qrcode.Repository) *ListQRCodesUseCase {
	return &ListQRCodesUseCase{repo: repo}
}

func (uc *ListQRCodesUseCase) Execute(ctx context.Context, actor authorization.Actor) ([]*QRCodeResponse, error) {
	codes, err := uc.repo.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list qr codes: %w", err)
	}
	out := make([]*QRCodeResponse, 0, len(codes))
	for _, q := range codes {
		out = append(out, toResponse(q))
	}
	return out, nil
}

type DeleteQRCodeCommand struct {
	QRCodeID uint
	Actor    authorization.Actor
}

type DeleteQRCodeUseCase struct {
	repo   qrcode.Repository
	logger logger.Interface
}

func NewDeleteQRCodeUseCase(repo qrcode.Repository, logger logger.Interface) *DeleteQRCodeUseCase {
	return &DeleteQRCodeUseCase{repo: repo, logger: logger}
}

func (uc *DeleteQRCodeUseCase) Execute(ctx context.Context, cmd DeleteQRCodeCommand) error {
	q, err := uc.repo.GetByID(ctx, cmd.QRCodeID)
	if err != nil {
		if errors.Is(err, qrcode.ErrQRCodeNotFound) {
			return apperrors.NewNotFoundError("qr code not found")
		}
		return fmt.Errorf("failed to load qr code: %w", err)
	}
	if !cmd.Actor.CanAccess(q.UserID()) {
		return apperrors.NewNotFoundError("qr code not found")
	}

	if err := uc.repo.Delete(ctx, q.ID()); err != nil {
		return fmt.Errorf("failed to delete qr code: %w", err)
	}
	uc.logger.Infow("qr code deleted", "qr_code_id", q.ID(), "by", cmd.Actor.UserID)
	return nil
}
