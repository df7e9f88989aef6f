package qrcode

import "context"

type Repository interface {
	Create(ctx context.Context, code *QRCode) error
	GetByID(ctx context.Context, id uint) (*QRCode, error)
	ListByOwner(ctx context.Context, userID uint) ([]*QRCode, error)
	Delete(ctx context.Context, id uint) error
}
