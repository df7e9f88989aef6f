package qrcode

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/toolbox/internal/shared/biztime"
)

const (
	DefaultSize      = 256
	MinSize          = 64
	MaxSize          = 2048
	maxContentLength = 2048
)

var (
	ErrQRCodeNotFound  = errors.New("qr code not found")
	ErrContentRequired = errors.New("qr code content is required")
	ErrContentTooLong  = errors.New("qr code content must be at most 2048 characters")
)

// QRCode is a saved QR definition. Rendering happens in the browser.
type QRCode struct {
	id        uint
	userID    uint
	content   string
	label     string
	size      int
	createdAt time.Time
}

// NewQRCode clamps size into [MinSize, MaxSize]; zero means DefaultSize.
func NewQRCode(userID uint, content, label string, size int) (*QRCode, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	if len(content) > maxContentLength {
		return nil, ErrContentTooLong
	}

	return &QRCode{
		userID:    userID,
		content:   content,
		label:     strings.TrimSpace(label),
		size:      clampSize(size),
		createdAt: biztime.NowUTC(),
	}, nil
}

func clampSize(size int) int {
	switch {
	case size == 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	default:
		return size
	}
}

func ReconstructQRCode(id, userID uint, content, label string, size int, createdAt time.Time) *QRCode {
	return &QRCode{id: id, userID: userID, content: content, label: label, size: size, createdAt: createdAt}
}

func (q *QRCode) ID() uint             { return q.id }
func (q *QRCode) UserID() uint         { return q.userID }
func (q *QRCode) Content() string      { return q.content }
func (q *QRCode) Label() string        { return q.label }
func (q *QRCode) Size() int            { return q.size }
func (q *QRCode) CreatedAt() time.Time { return q.createdAt }

func (q *QRCode) SetID(id uint) {
	if q.id == 0 {
		q.id = id
	}
}
