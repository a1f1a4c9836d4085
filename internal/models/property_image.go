package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyImage is one gallery image for a property, ordered by SortOrder.
type PropertyImage struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID `gorm:"column:property_id;type:uuid;not null;index" json:"propertyId"`
	URL        string    `gorm:"column:url;not null" json:"url"`
	SortOrder  int       `gorm:"column:sort_order;not null;default:0" json:"sortOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

func (i *PropertyImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
