package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orris-inc/toolbox/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID                   uint    `gorm:"primarykey"`
	Username             string  `gorm:"uniqueIndex;not null;size:50"`
	PasswordHash         string  `gorm:"not null;size:255"`
	Role                 string  `gorm:"not null;default:user;size:20"`
	Plan                 string  `gorm:"not null;default:free;size:20"`
	StripeCustomerID     *string `gorm:"size:255;index:idx_users_stripe_customer"`
	StripeSubscriptionID *string `gorm:"size:255"`
	PlanExpiresAt        *time.Time
	EmitterSettings      datatypes.JSON
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
