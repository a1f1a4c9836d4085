package listings

import (
	"context"
	"time"

	"brickly-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// PropertyInput are the property fields accepted at listing creation.
type PropertyInput struct {
	Type           *string          `json:"type"`
	Address1       string           `json:"address1"`
	City           string           `json:"city"`
	State          string           `json:"state"`
	Zip            string           `json:"zip"`
	SquareFeet     *int             `json:"squareFeet"`
	Bedrooms       *int             `json:"bedrooms"`
	Bathrooms      *int             `json:"bathrooms"`
	TargetRaise    *decimal.Decimal `json:"targetRaise"`
	EstMonthlyRent *decimal.Decimal `json:"estMonthlyRent"`
}

type ListingInput struct {
	AskingPrice  decimal.Decimal `json:"askingPrice"`
	BonusPercent decimal.Decimal `json:"bonusPercent"`
}

type ShareClassInput struct {
	TotalShares            int64           `json:"totalShares"`
	ReferencePricePerShare decimal.Decimal `json:"referencePricePerShare"`
}

// Provenance records where an imported property came from. Nil for manual
// listings.
type Provenance struct {
	SourceType  string
	ExternalID  string
	Attribution *string
}

// CreateInput is the full bundle for creating a property with its listing
// and share class.
type CreateInput struct {
	ListerUserID uuid.UUID
	Property     PropertyInput
	Listing      ListingInput
	ShareClass   ShareClassInput
	Images       []string
	Provenance   *Provenance
}

// CreateResult carries every row created by the bundle transaction.
type CreateResult struct {
	Property      models.Property   `json:"property"`
	Listing       models.Listing    `json:"listing"`
	ShareClass    models.ShareClass `json:"shareClass"`
	ImagesCreated int               `json:"imagesCreated"`
}

// CreateBundle creates Property + Listing + ShareClass + images in one
// transaction. The share pool starts full: sharesAvailable == totalShares.
func (s *Service) CreateBundle(ctx context.Context, in CreateInput) (*CreateResult, error) {
	var result CreateResult

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		propType := models.PropertyHouse
		if in.Property.Type != nil {
			propType = *in.Property.Type
		}
		property := models.Property{
			Type:           propType,
			Address1:       in.Property.Address1,
			City:           in.Property.City,
			State:          in.Property.State,
			Zip:            in.Property.Zip,
			Status:         models.PropertyListed,
			SquareFeet:     in.Property.SquareFeet,
			Bedrooms:       in.Property.Bedrooms,
			Bathrooms:      in.Property.Bathrooms,
			TargetRaise:    in.Property.TargetRaise,
			EstMonthlyRent: in.Property.EstMonthlyRent,
		}
		if in.Provenance != nil {
			now := time.Now()
			property.SourceType = &in.Provenance.SourceType
			property.SourceRefID = &in.Provenance.ExternalID
			property.ImportedAt = &now
			property.SourceAttribution = in.Provenance.Attribution
		}
		if err := tx.Create(&property).Error; err != nil {
			return err
		}

		listing := models.Listing{
			PropertyID:   property.ID,
			ListerUserID: in.ListerUserID,
			AskingPrice:  in.Listing.AskingPrice,
			BonusPercent: in.Listing.BonusPercent,
			Status:       models.ListingListed,
			PostedAt:     time.Now(),
		}
		if err := tx.Create(&listing).Error; err != nil {
			return err
		}

		shareClass := models.ShareClass{
			PropertyID:             property.ID,
			TotalShares:            in.ShareClass.TotalShares,
			SharesAvailable:        in.ShareClass.TotalShares,
			ReferencePricePerShare: in.ShareClass.ReferencePricePerShare,
		}
		if err := tx.Create(&shareClass).Error; err != nil {
			return err
		}

		for i, url := range in.Images {
			image := models.PropertyImage{PropertyID: property.ID, URL: url, SortOrder: i}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}

		result = CreateResult{
			Property:      property,
			Listing:       listing,
			ShareClass:    shareClass,
			ImagesCreated: len(in.Images),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Mine returns the lister's listings with property, images and share class.
func (s *Service) Mine(ctx context.Context, listerUserID uuid.UUID) ([]models.Listing, error) {
	var out []models.Listing
	err := s.DB.WithContext(ctx).
		Preload("Property.Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Property.ShareClass").
		Where("lister_user_id = ?", listerUserID).
		Order("posted_at DESC").
		Find(&out).Error
	return out, err
}

// PropertyPatch is the partial property update accepted by PUT /listings/:id.
type PropertyPatch struct {
	Type           *string          `json:"type"`
	Address1       *string          `json:"address1"`
	City           *string          `json:"city"`
	State          *string          `json:"state"`
	Zip            *string          `json:"zip"`
	SquareFeet     *int             `json:"squareFeet"`
	Bedrooms       *int             `json:"bedrooms"`
	Bathrooms      *int             `json:"bathrooms"`
	TargetRaise    *decimal.Decimal `json:"targetRaise"`
	EstMonthlyRent *decimal.Decimal `json:"estMonthlyRent"`
}

type ListingPatch struct {
	AskingPrice  *decimal.Decimal `json:"askingPrice"`
	BonusPercent *decimal.Decimal `json:"bonusPercent"`
}

type UpdateInput struct {
	Property *PropertyPatch `json:"property"`
	Listing  *ListingPatch  `json:"listing"`
}

// Update applies a partial update to a listing owned by listerUserID and its
// property, in one transaction.
func (s *Service) Update(ctx context.Context, listingID, listerUserID uuid.UUID, in UpdateInput) (*models.Listing, error) {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Listing
		err := tx.Where("id = ? AND lister_user_id = ?", listingID, listerUserID).First(&existing).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}

		if in.Property != nil {
			updates := propertyUpdates(in.Property)
			if len(updates) > 0 {
				if err := tx.Model(&models.Property{}).Where("id = ?", existing.PropertyID).
					Updates(updates).Error; err != nil {
					return err
				}
			}
		}
		if in.Listing != nil {
			updates := map[string]interface{}{}
			if in.Listing.AskingPrice != nil {
				updates["asking_price"] = *in.Listing.AskingPrice
			}
			if in.Listing.BonusPercent != nil {
				updates["bonus_percent"] = *in.Listing.BonusPercent
			}
			if len(updates) > 0 {
				if err := tx.Model(&models.Listing{}).Where("id = ?", listingID).
					Updates(updates).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var updated models.Listing
	err = s.DB.WithContext(ctx).
		Preload("Property.Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Property.ShareClass").
		Where("id = ?", listingID).
		First(&updated).Error
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func propertyUpdates(p *PropertyPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Type != nil {
		updates["type"] = *p.Type
	}
	if p.Address1 != nil {
		updates["address1"] = *p.Address1
	}
	if p.City != nil {
		updates["city"] = *p.City
	}
	if p.State != nil {
		updates["state"] = *p.State
	}
	if p.Zip != nil {
		updates["zip"] = *p.Zip
	}
	if p.SquareFeet != nil {
		updates["square_feet"] = *p.SquareFeet
	}
	if p.Bedrooms != nil {
		updates["bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		updates["bathrooms"] = *p.Bathrooms
	}
	if p.TargetRaise != nil {
		updates["target_raise"] = *p.TargetRaise
	}
	if p.EstMonthlyRent != nil {
		updates["est_monthly_rent"] = *p.EstMonthlyRent
	}
	return updates
}
