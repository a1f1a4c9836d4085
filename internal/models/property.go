package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Property types.
const (
	PropertyHouse     = "HOUSE"
	PropertyCondo     = "CONDO"
	PropertyTownhouse = "TOWNHOUSE"
	PropertyMultiUnit = "MULTI_UNIT"
)

// Property statuses.
const (
	PropertyListed     = "LISTED"
	PropertyRentListed = "RENT_LISTED"
	PropertyRented     = "RENTED"
)

// Listing-source types for imported properties.
const (
	SourcePublic  = "PUBLIC"
	SourcePartner = "PARTNER"
)

// Property is a real-estate asset. Imported properties carry provenance
// (source type, external ref, attribution); manually listed ones leave it nil.
type Property struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Type              string           `gorm:"column:type;not null;default:HOUSE" json:"type"`
	Address1          string           `gorm:"column:address1;not null" json:"address1"`
	City              string           `gorm:"column:city;not null" json:"city"`
	State             string           `gorm:"column:state;not null" json:"state"`
	Zip               string           `gorm:"column:zip;not null" json:"zip"`
	Status            string           `gorm:"column:status;not null;default:LISTED" json:"status"`
	SquareFeet        *int             `gorm:"column:square_feet" json:"squareFeet"`
	Bedrooms          *int             `gorm:"column:bedrooms" json:"bedrooms"`
	Bathrooms         *int             `gorm:"column:bathrooms" json:"bathrooms"`
	TargetRaise       *decimal.Decimal `gorm:"column:target_raise;type:decimal(14,2)" json:"targetRaise"`
	EstMonthlyRent    *decimal.Decimal `gorm:"column:est_monthly_rent;type:decimal(12,2)" json:"estMonthlyRent"`
	SourceType        *string          `gorm:"column:source_type" json:"sourceType"`
	SourceRefID       *string          `gorm:"column:source_ref_id" json:"sourceRefId"`
	ImportedAt        *time.Time       `gorm:"column:imported_at" json:"importedAt"`
	SourceAttribution *string          `gorm:"column:source_attribution" json:"sourceAttribution"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`

	Listings   []Listing       `gorm:"foreignKey:PropertyID" json:"listings,omitempty"`
	Images     []PropertyImage `gorm:"foreignKey:PropertyID" json:"images,omitempty"`
	ShareClass *ShareClass     `gorm:"foreignKey:PropertyID" json:"shareClass,omitempty"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
