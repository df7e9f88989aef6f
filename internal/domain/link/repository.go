package link

import "context"

type Repository interface {
	// Create fails with ErrShortCodeTaken when the code collides.
	Create(ctx context.Context, link *Link) error
	GetByID(ctx context.Context, id uint) (*Link, error)
	GetByShortCode(ctx context.Context, code string) (*Link, error)
	// ListByOwner returns a user's links newest first; userID 0 lists all.
	ListByOwner(ctx context.Context, userID uint) ([]*Link, error)
	Update(ctx context.Context, link *Link) error
	Delete(ctx context.Context, id uint) error
	// RecordClick increments the counter and stores the event atomically.
	RecordClick(ctx context.Context, event *ClickEvent) error
	ListClicks(ctx context.Context, linkID uint, limit int) ([]*ClickEvent, error)
}
