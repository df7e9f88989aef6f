package monitor

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/orris-inc/toolbox/internal/shared/biztime"
)

const maxLabelLength = 100

// Site is a URL under observation owned by one user.
type Site struct {
	id        uint
	userID    uint
	url       string
	label     string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewSite creates an active site.
func NewSite(userID uint, rawURL, label string) (*Site, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	label = strings.TrimSpace(label)
	if len(label) > maxLabelLength {
		return nil, ErrLabelTooLong
	}

	now := biztime.NowUTC()
	return &Site{
		userID:    userID,
		url:       normalized,
		label:     label,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSite rebuilds a site from persistence.
func ReconstructSite(id, userID uint, rawURL, label string, isActive bool, createdAt, updatedAt time.Time) (*Site, error) {
	if id == 0 {
		return nil, fmt.Errorf("site ID cannot be zero")
	}
	return &Site{
		id:        id,
		userID:    userID,
		url:       rawURL,
		label:     label,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", ErrInvalidSiteURL
	}
	return u.String(), nil
}

func (s *Site) ID() uint             { return s.id }
func (s *Site) UserID() uint         { return s.userID }
func (s *Site) URL() string          { return s.url }
func (s *Site) Label() string        { return s.label }
func (s *Site) IsActive() bool       { return s.isActive }
func (s *Site) CreatedAt() time.Time { return s.createdAt }
func (s *Site) UpdatedAt() time.Time { return s.updatedAt }

func (s *Site) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("site ID already set")
	}
	if id == 0 {
		return fmt.Errorf("site ID cannot be zero")
	}
	s.id = id
	return nil
}

// DisplayName is the label, or the URL when no label was given.
func (s *Site) DisplayName() string {
	if s.label != "" {
		return s.label
	}
	return s.url
}

// Toggle flips the activation flag. Inactive sites are skipped by the cycle.
func (s *Site) Toggle() {
	s.isActive = !s.isActive
	s.updatedAt = biztime.NowUTC()
}
