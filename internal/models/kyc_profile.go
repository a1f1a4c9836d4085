package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KYC statuses.
const (
	KycPending  = "PENDING"
	KycApproved = "APPROVED"
	KycRejected = "REJECTED"
)

// KycProfile is the 1:1 identity-verification record for a user.
// Investment and listing actions are gated on status APPROVED.
type KycProfile struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"userId"`
	Status      string         `gorm:"column:status;not null;default:PENDING" json:"status"`
	Data        datatypes.JSON `gorm:"column:data;type:jsonb" json:"data"`
	SubmittedAt time.Time      `gorm:"column:submitted_at;not null" json:"submittedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (KycProfile) TableName() string {
	return "kyc_profiles"
}

func (k *KycProfile) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
