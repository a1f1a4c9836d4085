package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShareClass is the fractional-ownership structure of one property.
// TotalShares is fixed at creation; SharesAvailable is the unissued pool.
// Invariant: sharesAvailable + sum of holdings == totalShares, always.
type ShareClass struct {
	ID                     uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropertyID             uuid.UUID       `gorm:"column:property_id;type:uuid;not null;uniqueIndex" json:"propertyId"`
	TotalShares            int64           `gorm:"column:total_shares;not null" json:"totalShares"`
	SharesAvailable        int64           `gorm:"column:shares_available;not null" json:"sharesAvailable"`
	ReferencePricePerShare decimal.Decimal `gorm:"column:reference_price_per_share;type:decimal(12,2);not null" json:"referencePricePerShare"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"-"`
}

func (ShareClass) TableName() string {
	return "share_classes"
}

func (s *ShareClass) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
