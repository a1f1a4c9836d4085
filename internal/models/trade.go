package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trade is the append-only record of one executed transfer against a sell
// order. Rows are never updated after creation.
type Trade struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SellOrderID   uuid.UUID       `gorm:"column:sell_order_id;type:uuid;not null;index" json:"sellOrderId"`
	PropertyID    uuid.UUID       `gorm:"column:property_id;type:uuid;not null;index" json:"propertyId"`
	BuyerUserID   uuid.UUID       `gorm:"column:buyer_user_id;type:uuid;not null" json:"buyerUserId"`
	SellerUserID  uuid.UUID       `gorm:"column:seller_user_id;type:uuid;not null" json:"sellerUserId"`
	SharesTraded  int64           `gorm:"column:shares_traded;not null" json:"sharesTraded"`
	PricePerShare decimal.Decimal `gorm:"column:price_per_share;type:decimal(12,2);not null" json:"pricePerShare"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (Trade) TableName() string {
	return "trades"
}

func (t *Trade) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
