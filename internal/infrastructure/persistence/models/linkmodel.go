package models

import (
	"time"

	"github.com/orris-inc/toolbox/internal/shared/constants"
)

type LinkModel struct {
	ID          uint   `gorm:"primarykey"`
	UserID      uint   `gorm:"not null;index"`
	ShortCode   string `gorm:"uniqueIndex;not null;size:16"`
	OriginalURL string `gorm:"not null;size:2048"`
	Title       string `gorm:"size:255"`
	Clicks      int64  `gorm:"not null;default:0"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LinkModel) TableName() string {
	return constants.TableLinks
}

type ClickEventModel struct {
	ID        uint      `gorm:"primarykey"`
	LinkID    uint      `gorm:"not null;index:idx_click_link_time,priority:1"`
	ClickedAt time.Time `gorm:"not null;index:idx_click_link_time,priority:2"`
	Referer   string    `gorm:"size:1024"`
	UserAgent string    `gorm:"size:512"`
}

func (ClickEventModel) TableName() string {
	return constants.TableClickEvents
}
