package rentals

import (
	"context"

	"brickly-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// ListRentListed returns properties open for rental applications.
func (s *Service) ListRentListed(ctx context.Context) ([]models.Property, error) {
	var props []models.Property
	err := s.DB.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("status = ?", models.PropertyRentListed).
		Order("created_at DESC").
		Find(&props).Error
	return props, err
}

// Apply creates a rental application for a rent-listed property. A tenant
// may hold at most one PENDING or APPROVED application per property.
func (s *Service) Apply(ctx context.Context, tenantUserID, propertyID uuid.UUID) (*models.RentalApplication, error) {
	var prop models.Property
	err := s.DB.WithContext(ctx).Select("status").Where("id = ?", propertyID).First(&prop).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if prop.Status != models.PropertyRentListed {
		return nil, ErrNotRentListed
	}

	var count int64
	err = s.DB.WithContext(ctx).Model(&models.RentalApplication{}).
		Where("property_id = ? AND tenant_user_id = ? AND status IN ?",
			propertyID, tenantUserID, []string{models.RentalPending, models.RentalApproved}).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyApplied
	}

	application := models.RentalApplication{
		PropertyID:   propertyID,
		TenantUserID: tenantUserID,
		Status:       models.RentalPending,
	}
	if err := s.DB.WithContext(ctx).Create(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ApplicationView is a pending application with tenant projection.
type ApplicationView struct {
	models.RentalApplication
	Tenant *models.PublicUser `json:"tenant"`
}

// PendingApplications lists PENDING applications for admin review, oldest first.
func (s *Service) PendingApplications(ctx context.Context) ([]ApplicationView, error) {
	var apps []models.RentalApplication
	err := s.DB.WithContext(ctx).
		Preload("Property").
		Preload("Tenant").
		Where("status = ?", models.RentalPending).
		Order("created_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationView, len(apps))
	for i, a := range apps {
		view := ApplicationView{RentalApplication: a}
		if a.Tenant != nil {
			pub := a.Tenant.Public(true)
			view.Tenant = &pub
		}
		out[i] = view
	}
	return out, nil
}

// Approve accepts a PENDING application for a RENT_LISTED property and marks
// the property RENTED, in one transaction.
func (s *Service) Approve(ctx context.Context, applicationID uuid.UUID, rentAmount *decimal.Decimal) (*models.RentalApplication, error) {
	var updated models.RentalApplication

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var application models.RentalApplication
		err := tx.Preload("Property").Where("id = ?", applicationID).First(&application).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrApplicationNotFound
			}
			return err
		}
		if application.Status != models.RentalPending {
			return ErrNotPending
		}
		if application.Property == nil || application.Property.Status != models.PropertyRentListed {
			return ErrNotRentListed
		}

		application.Status = models.RentalApproved
		application.RentAmount = rentAmount
		application.Property = nil
		if err := tx.Save(&application).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Property{}).Where("id = ?", application.PropertyID).
			Update("status", models.PropertyRented).Error; err != nil {
			return err
		}
		updated = application
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reject marks an application REJECTED.
func (s *Service) Reject(ctx context.Context, applicationID uuid.UUID) (*models.RentalApplication, error) {
	result := s.DB.WithContext(ctx).Model(&models.RentalApplication{}).
		Where("id = ?", applicationID).
		Update("status", models.RentalRejected)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	var application models.RentalApplication
	if err := s.DB.WithContext(ctx).Where("id = ?", applicationID).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}
