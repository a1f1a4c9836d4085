package invest

import (
	"context"
	"time"

	"brickly-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// Buy executes a primary-issuance purchase: move sharesToBuy from the
// property's unissued pool into the buyer's holding, atomically.
//
// The pool decrement is a single conditional UPDATE guarded by
// shares_available >= n; its affected-row count is the sole success signal,
// so concurrent buyers cannot oversell the pool. No Trade row is written;
// trades record secondary transfers only.
func (s *Service) Buy(ctx context.Context, userID, propertyID uuid.UUID, sharesToBuy int64) (*models.Holding, error) {
	var holding models.Holding

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shareClass models.ShareClass
		if err := tx.Where("property_id = ?", propertyID).First(&shareClass).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrPropertyNotFound
			}
			return err
		}

		result := tx.Model(&models.ShareClass{}).
			Where("id = ? AND shares_available >= ?", shareClass.ID, sharesToBuy).
			UpdateColumn("shares_available", gorm.Expr("shares_available - ?", sharesToBuy))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientShares
		}

		err := tx.Where("user_id = ? AND share_class_id = ?", userID, shareClass.ID).
			First(&holding).Error
		if err == gorm.ErrRecordNotFound {
			holding = models.Holding{
				UserID:       userID,
				ShareClassID: shareClass.ID,
				SharesOwned:  sharesToBuy,
			}
			return tx.Create(&holding).Error
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&holding).
			UpdateColumn("shares_owned", gorm.Expr("shares_owned + ?", sharesToBuy)).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", holding.ID).First(&holding).Error
	})
	if err != nil {
		return nil, err
	}
	return &holding, nil
}

// PortfolioEntry is one holding with its property and ownership percentage.
type PortfolioEntry struct {
	ID          uuid.UUID              `json:"id"`
	SharesOwned int64                  `json:"sharesOwned"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	Percent     float64                `json:"percent"`
	Property    *models.Property       `json:"property"`
	ShareClass  map[string]interface{} `json:"shareClass"`
}

// Portfolio returns the user's holdings with property context.
func (s *Service) Portfolio(ctx context.Context, userID uuid.UUID) ([]PortfolioEntry, error) {
	var holdings []models.Holding
	err := s.DB.WithContext(ctx).
		Preload("ShareClass.Property").
		Where("user_id = ?", userID).
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}

	out := make([]PortfolioEntry, 0, len(holdings))
	for _, h := range holdings {
		if h.ShareClass == nil {
			continue
		}
		percent := 0.0
		if h.ShareClass.TotalShares > 0 {
			percent = float64(h.SharesOwned) / float64(h.ShareClass.TotalShares)
		}
		out = append(out, PortfolioEntry{
			ID:          h.ID,
			SharesOwned: h.SharesOwned,
			UpdatedAt:   h.UpdatedAt,
			Percent:     percent,
			Property:    h.ShareClass.Property,
			ShareClass: map[string]interface{}{
				"id":                     h.ShareClass.ID,
				"totalShares":            h.ShareClass.TotalShares,
				"sharesAvailable":        h.ShareClass.SharesAvailable,
				"referencePricePerShare": h.ShareClass.ReferencePricePerShare,
			},
		})
	}
	return out, nil
}
