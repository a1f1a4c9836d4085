package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles.
const (
	RoleAdmin    = "ADMIN"
	RoleLister   = "LISTER"
	RoleInvestor = "INVESTOR"
	RoleTenant   = "TENANT"
)

// User is an account holder. Email is the login identity; phone is an
// optional alternative login identifier.
type User struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email         string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone         *string   `gorm:"column:phone" json:"phone"`
	PasswordHash  string    `gorm:"column:password_hash;not null" json:"-"`
	Role          string    `gorm:"column:role;not null;default:INVESTOR" json:"role"`
	EmailVerified bool      `gorm:"column:email_verified;not null;default:false" json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the projection embedded in listings, sell orders and
// admin views. Never includes the password hash.
type PublicUser struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Public returns the safe projection of a user.
func (u *User) Public(withCreatedAt bool) PublicUser {
	out := PublicUser{ID: u.ID, Email: u.Email, Phone: u.Phone, Role: u.Role}
	if withCreatedAt {
		t := u.CreatedAt
		out.CreatedAt = &t
	}
	return out
}
