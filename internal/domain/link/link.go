package link

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/id"
)

// Link is a short code that redirects to an original URL.
type Link struct {
	id          uint
	userID      uint
	shortCode   string
	originalURL string
	title       string
	clicks      int64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewLink(userID uint, shortCode, originalURL, title string) (*Link, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !id.IsValid(shortCode, id.ShortCodeLength) {
		return nil, ErrInvalidShortCode
	}
	originalURL = strings.TrimSpace(originalURL)
	if err := ValidateTargetURL(originalURL); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Link{
		userID:      userID,
		shortCode:   shortCode,
		originalURL: originalURL,
		title:       strings.TrimSpace(title),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ValidateTargetURL accepts absolute http and https URLs only.
func ValidateTargetURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidTargetURL
	}
	return nil
}

func ReconstructLink(id, userID uint, shortCode, originalURL, title string, clicks int64, isActive bool, createdAt, updatedAt time.Time) *Link {
	return &Link{
		id:          id,
		userID:      userID,
		shortCode:   shortCode,
		originalURL: originalURL,
		title:       title,
		clicks:      clicks,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (l *Link) ID() uint             { return l.id }
func (l *Link) UserID() uint         { return l.userID }
func (l *Link) ShortCode() string    { return l.shortCode }
func (l *Link) OriginalURL() string  { return l.originalURL }
func (l *Link) Title() string        { return l.title }
func (l *Link) Clicks() int64        { return l.clicks }
func (l *Link) IsActive() bool       { return l.isActive }
func (l *Link) CreatedAt() time.Time { return l.createdAt }
func (l *Link) UpdatedAt() time.Time { return l.updatedAt }

func (l *Link) SetID(id uint) {
	if l.id == 0 {
		l.id = id
	}
}

func (l *Link) Toggle() {
	l.isActive = !l.isActive
	l.updatedAt = biztime.NowUTC()
}

// ClickEvent records one redirect through a link.
type ClickEvent struct {
	ID        uint
	LinkID    uint
	ClickedAt time.Time
	Referer   string
	UserAgent string
}
