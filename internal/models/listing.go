package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Listing statuses.
const (
	ListingListed = "LISTED"
	ListingClosed = "CLOSED"
)

// Listing is the sale offering a lister posts for a property.
type Listing struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropertyID   uuid.UUID       `gorm:"column:property_id;type:uuid;not null;index" json:"propertyId"`
	ListerUserID uuid.UUID       `gorm:"column:lister_user_id;type:uuid;not null;index" json:"listerUserId"`
	AskingPrice  decimal.Decimal `gorm:"column:asking_price;type:decimal(14,2);not null" json:"askingPrice"`
	BonusPercent decimal.Decimal `gorm:"column:bonus_percent;type:decimal(5,2);not null;default:0" json:"bonusPercent"`
	Status       string          `gorm:"column:status;not null;default:LISTED" json:"status"`
	PostedAt     time.Time       `gorm:"column:posted_at;not null" json:"postedAt"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Lister   *User     `gorm:"foreignKey:ListerUserID" json:"-"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
