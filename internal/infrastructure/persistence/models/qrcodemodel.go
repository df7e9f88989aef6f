package models

import (
	"time"

	"github.com/orris-inc/toolbox/internal/shared/constants"
)

type QRCodeModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Content   string `gorm:"not null;size:2048"`
	Label     string `gorm:"size:255"`
	Size      int    `gorm:"not null;default:256"`
	CreatedAt time.Time
}

func (QRCodeModel) TableName() string {
	return constants.TableQRCodes
}

type ClientModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index"`
	Name      string `gorm:"not null;size:255"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	Address   string `gorm:"size:500"`
	City      string `gorm:"size:100"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ClientModel) TableName() string {
	return constants.TableClients
}
