package properties

import (
	"context"

	"brickly-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// ListingView is a listing with its lister's public projection.
type ListingView struct {
	models.Listing
	Lister *models.PublicUser `json:"lister"`
}

// PropertyView is a property with listings carrying lister projections.
type PropertyView struct {
	models.Property
	Listings []ListingView `json:"listings"`
}

func toView(p models.Property) PropertyView {
	view := PropertyView{Property: p, Listings: make([]ListingView, len(p.Listings))}
	for i, l := range p.Listings {
		lv := ListingView{Listing: l}
		if l.Lister != nil {
			pub := l.Lister.Public(false)
			lv.Lister = &pub
		}
		view.Listings[i] = lv
	}
	return view
}

// List returns all properties with listings, images and share class,
// newest first.
func (s *Service) List(ctx context.Context) ([]PropertyView, error) {
	var props []models.Property
	err := s.DB.WithContext(ctx).
		Preload("Listings.Lister").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("ShareClass").
		Order("created_at DESC").
		Find(&props).Error
	if err != nil {
		return nil, err
	}
	out := make([]PropertyView, len(props))
	for i, p := range props {
		out[i] = toView(p)
	}
	return out, nil
}

// Get returns one property by id with the same includes as List.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	var prop models.Property
	err := s.DB.WithContext(ctx).
		Preload("Listings.Lister").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("ShareClass").
		Where("id = ?", id).
		First(&prop).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	view := toView(prop)
	return &view, nil
}

// RentList marks a property available for rent.
func (s *Service) RentList(ctx context.Context, propertyID uuid.UUID) (*models.Property, error) {
	result := s.DB.WithContext(ctx).Model(&models.Property{}).
		Where("id = ?", propertyID).
		Update("status", models.PropertyRentListed)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var prop models.Property
	if err := s.DB.WithContext(ctx).Where("id = ?", propertyID).First(&prop).Error; err != nil {
		return nil, err
	}
	return &prop, nil
}

// Delete removes a LISTED property and every dependent row.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prop models.Property
		if err := tx.Where("id = ?", id).First(&prop).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		if prop.Status != models.PropertyListed {
			return ErrInvalidState
		}

		var shareClass models.ShareClass
		err := tx.Where("property_id = ?", id).First(&shareClass).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == nil {
			if err := tx.Where("share_class_id = ?", shareClass.ID).Delete(&models.Holding{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&shareClass).Error; err != nil {
				return err
			}
		}
		for _, m := range []interface{}{
			&models.Trade{}, &models.SellOrder{}, &models.RentalApplication{},
			&models.Listing{}, &models.PropertyImage{},
		} {
			if err := tx.Where("property_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&prop).Error
	})
}
