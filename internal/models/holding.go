package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holding is a user's share balance in one ShareClass. At most one row per
// (user, share class); SharesOwned never goes below zero.
type Holding struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_holdings_user_share_class" json:"userId"`
	ShareClassID uuid.UUID `gorm:"column:share_class_id;type:uuid;not null;uniqueIndex:idx_holdings_user_share_class" json:"shareClassId"`
	SharesOwned  int64     `gorm:"column:shares_owned;not null;default:0" json:"sharesOwned"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	ShareClass *ShareClass `gorm:"foreignKey:ShareClassID" json:"shareClass,omitempty"`
}

func (Holding) TableName() string {
	return "holdings"
}

func (h *Holding) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
