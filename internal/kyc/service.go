package kyc

import (
	"context"
	"time"

	"brickly-backend/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	statusCachePrefix = "kyc:"
	statusCacheTTL    = 5 * time.Minute
)

// Service looks up and mutates KYC profiles. Rdb is optional; when nil every
// status check goes straight to the database.
type Service struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

// IsApproved reports whether the user's KYC profile is APPROVED, consulting
// the Redis cache first. Implements middleware.KycChecker.
func (s *Service) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := statusCachePrefix + userID.String()
	if s.Rdb != nil {
		if cached, err := s.Rdb.Get(ctx, key).Result(); err == nil {
			return cached == models.KycApproved, nil
		}
	}

	var profile models.KycProfile
	err := s.DB.WithContext(ctx).Select("status").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, err
	}
	if s.Rdb != nil {
		s.Rdb.Set(ctx, key, profile.Status, statusCacheTTL)
	}
	return profile.Status == models.KycApproved, nil
}

func (s *Service) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.Rdb != nil {
		s.Rdb.Del(ctx, statusCachePrefix+userID.String())
	}
}

// Me returns the caller's KYC profile.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*models.KycProfile, error) {
	var profile models.KycProfile
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Submit upserts the caller's profile back to PENDING with fresh data.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, data datatypes.JSON) (*models.KycProfile, error) {
	var profile models.KycProfile
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		if err == gorm.ErrRecordNotFound {
			profile = models.KycProfile{
				UserID:      userID,
				Status:      models.KycPending,
				Data:        data,
				SubmittedAt: time.Now(),
			}
			return tx.Create(&profile).Error
		}
		if err != nil {
			return err
		}
		profile.Status = models.KycPending
		profile.Data = data
		profile.SubmittedAt = time.Now()
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return &profile, nil
}

// Submissions lists PENDING profiles for admin review, oldest first.
func (s *Service) Submissions(ctx context.Context) ([]map[string]interface{}, error) {
	var profiles []models.KycProfile
	err := s.DB.WithContext(ctx).Preload("User").
		Where("status = ?", models.KycPending).
		Order("submitted_at ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, len(profiles))
	for i, p := range profiles {
		entry := map[string]interface{}{
			"id":          p.ID,
			"userId":      p.UserID,
			"status":      p.Status,
			"data":        p.Data,
			"submittedAt": p.SubmittedAt,
		}
		if p.User != nil {
			entry["user"] = p.User.Public(true)
		}
		out[i] = entry
	}
	return out, nil
}

// Decide sets the profile status to APPROVED or REJECTED.
func (s *Service) Decide(ctx context.Context, userID uuid.UUID, status string) (*models.KycProfile, error) {
	result := s.DB.WithContext(ctx).Model(&models.KycProfile{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProfileNotFound
	}
	s.invalidate(ctx, userID)

	var profile models.KycProfile
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
