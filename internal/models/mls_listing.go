package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MLSListing is an external listing staged for import. Rows are keyed by the
// feed's external id and fully replaced on reseed.
type MLSListing struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ExternalID   string          `gorm:"column:external_id;not null;uniqueIndex" json:"externalId"`
	SourceType   string          `gorm:"column:source_type;not null;default:PUBLIC" json:"sourceType"`
	Address      string          `gorm:"column:address;not null" json:"address"`
	City         string          `gorm:"column:city;not null" json:"city"`
	State        string          `gorm:"column:state;not null" json:"state"`
	Zip          string          `gorm:"column:zip;not null" json:"zip"`
	ListPrice    decimal.Decimal `gorm:"column:list_price;type:decimal(14,2);not null" json:"listPrice"`
	RentEstimate decimal.Decimal `gorm:"column:rent_estimate;type:decimal(12,2);not null" json:"rentEstimate"`
	Beds         int             `gorm:"column:beds;not null" json:"beds"`
	Baths        decimal.Decimal `gorm:"column:baths;type:decimal(4,1);not null" json:"baths"`
	Sqft         int             `gorm:"column:sqft;not null" json:"sqft"`
	YearBuilt    int             `gorm:"column:year_built;not null" json:"yearBuilt"`
	Images       datatypes.JSON  `gorm:"column:images;type:jsonb" json:"images"`
	ThumbURL     string          `gorm:"column:thumb_url;not null" json:"thumbUrl"`
	Status       string          `gorm:"column:status;not null;default:ACTIVE" json:"status"`
	Attribution  *string         `gorm:"column:attribution" json:"attribution"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (MLSListing) TableName() string {
	return "mls_listings"
}

func (m *MLSListing) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
