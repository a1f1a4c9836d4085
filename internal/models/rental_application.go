package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Rental application statuses.
const (
	RentalPending  = "PENDING"
	RentalApproved = "APPROVED"
	RentalRejected = "REJECTED"
)

// RentalApplication is a tenant's application for a rent-listed property.
type RentalApplication struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropertyID   uuid.UUID        `gorm:"column:property_id;type:uuid;not null;index" json:"propertyId"`
	TenantUserID uuid.UUID        `gorm:"column:tenant_user_id;type:uuid;not null;index" json:"tenantUserId"`
	Status       string           `gorm:"column:status;not null;default:PENDING" json:"status"`
	RentAmount   *decimal.Decimal `gorm:"column:rent_amount;type:decimal(12,2)" json:"rentAmount"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Tenant   *User     `gorm:"foreignKey:TenantUserID" json:"-"`
}

func (RentalApplication) TableName() string {
	return "rental_applications"
}

func (r *RentalApplication) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
