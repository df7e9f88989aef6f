package models

import (
	"time"

	"github.com/orris-inc/toolbox/internal/shared/constants"
)

type SiteModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	URL       string `gorm:"not null;size:2048"`
	Label     string `gorm:"size:100"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SiteModel) TableName() string {
	return constants.TableSites
}

// CheckResultModel rows are append-only and pruned by checked_at.
type CheckResultModel struct {
	ID         uint      `gorm:"primarykey"`
	SiteID     uint      `gorm:"not null;index:idx_check_site_time,priority:1"`
	CheckedAt  time.Time `gorm:"not null;index:idx_check_site_time,priority:2;index:idx_check_time"`
	IsUp       bool      `gorm:"not null"`
	StatusCode *int
	LatencyMs  *int64
	Error      *string `gorm:"size:1024"`
}

func (CheckResultModel) TableName() string {
	return constants.TableCheckResults
}
