package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SellOrder statuses. An order becomes FILLED exactly when SharesForSale
// reaches zero; there is no cancel state.
const (
	SellOrderOpen   = "OPEN"
	SellOrderFilled = "FILLED"
)

// SellOrder is a holder's standing offer to sell shares at a fixed price.
// Shares are not reserved at creation; trade execution re-validates the
// seller's holding.
type SellOrder struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index" json:"userId"`
	PropertyID       uuid.UUID       `gorm:"column:property_id;type:uuid;not null;index" json:"propertyId"`
	SharesForSale    int64           `gorm:"column:shares_for_sale;not null" json:"sharesForSale"`
	AskPricePerShare decimal.Decimal `gorm:"column:ask_price_per_share;type:decimal(12,2);not null" json:"askPricePerShare"`
	Status           string          `gorm:"column:status;not null;default:OPEN" json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
}

func (SellOrder) TableName() string {
	return "sell_orders"
}

func (o *SellOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
