package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"brickly-backend/internal/emails"
	"brickly-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const verificationTokenTTL = 24 * time.Hour

type Service struct {
	DB         *gorm.DB
	Mailer     emails.Sender
	JWTSecret  string
	WebBaseURL string
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResult carries the response body for POST /auth/register.
// VerifyURL is only populated on the dev email-bypass path.
type RegisterResult struct {
	Message   string `json:"message"`
	VerifyURL string `json:"verifyUrl,omitempty"`
}

// Register creates the user plus a PENDING KYC profile in one transaction,
// then issues a verification token and emails the verify link.
// allowEmailBypass controls whether a failed send surfaces the link instead
// of an error.
func (s *Service) Register(ctx context.Context, in RegisterInput, allowEmailBypass bool) (*RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	verifyToken, err := randomToken()
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrEmailInUse
			}
			return err
		}
		profile := models.KycProfile{
			UserID:      user.ID,
			Status:      models.KycPending,
			Data:        datatypes.JSON([]byte("{}")),
			SubmittedAt: time.Now(),
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		record := models.VerificationToken{
			UserID:    user.ID,
			Token:     verifyToken,
			ExpiresAt: time.Now().Add(verificationTokenTTL),
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}

	verifyURL := fmt.Sprintf("%s/verify?token=%s", s.WebBaseURL, verifyToken)
	if s.Mailer != nil {
		if sendErr := s.Mailer.SendVerification(ctx, user.Email, verifyURL); sendErr == nil {
			return &RegisterResult{Message: "Registration successful. Verify your email."}, nil
		}
	}
	if allowEmailBypass {
		return &RegisterResult{
			Message:   "Email service unavailable. Use the verification link to continue.",
			VerifyURL: verifyURL,
		}, nil
	}
	return nil, ErrEmailSendFailed
}

// Login verifies credentials against email or phone and returns a signed
// bearer token. Unverified emails are rejected.
func (s *Service) Login(ctx context.Context, emailOrPhone, password string) (string, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("email = ? OR phone = ?", emailOrPhone, emailOrPhone).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	if user.Email != "" && !user.EmailVerified {
		return "", ErrEmailNotVerified
	}
	return SignToken(s.JWTSecret, user.ID, user.Role)
}

// VerifyEmail consumes a verification token, marking the user verified.
func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.VerificationToken
		if err := tx.Where("token = ?", token).First(&record).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrInvalidToken
			}
			return err
		}
		if record.ExpiresAt.Before(time.Now()) {
			return ErrInvalidToken
		}
		if err := tx.Model(&models.User{}).Where("id = ?", record.UserID).
			Update("email_verified", true).Error; err != nil {
			return err
		}
		return tx.Delete(&record).Error
	})
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func isDuplicateKey(err error) bool {
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique")
}
