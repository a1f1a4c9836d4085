package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"brickly-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.KycProfile{}, &models.VerificationToken{},
	))

	svc := &Service{
		DB:         db,
		Mailer:     nil,
		JWTSecret:  "test-secret",
		WebBaseURL: "http://localhost:3000",
	}
	h := &Handlers{Service: svc, AllowEmailBypass: true}

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Get("/auth/verify", h.Verify)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func errorCode(out map[string]interface{}) string {
	detail, _ := out["error"].(map[string]interface{})
	code, _ := detail["code"].(string)
	return code
}

func TestRegister_CreatesUserProfileAndToken(t *testing.T) {
	app, db := setupAuthTest(t)

	status, out := postJSON(t, app, "/auth/register", map[string]string{
		"email": "alice@example.com", "password": "password123", "role": models.RoleInvestor,
	})
	require.Equal(t, fiber.StatusCreated, status)
	// no mailer configured, so the bypass path surfaces the verify link
	verifyURL, _ := out["verifyUrl"].(string)
	assert.Contains(t, verifyURL, "/verify?token=")

	var user models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, models.RoleInvestor, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	var profile models.KycProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, models.KycPending, profile.Status)

	var tokens int64
	require.NoError(t, db.Model(&models.VerificationToken{}).Where("user_id = ?", user.ID).Count(&tokens).Error)
	assert.Equal(t, int64(1), tokens)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	app, _ := setupAuthTest(t)
	payload := map[string]string{
		"email": "dup@example.com", "password": "password123", "role": models.RoleInvestor,
	}
	status, _ := postJSON(t, app, "/auth/register", payload)
	require.Equal(t, fiber.StatusCreated, status)

	status, out := postJSON(t, app, "/auth/register", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "CONFLICT", errorCode(out))
}

func TestRegister_Validation(t *testing.T) {
	app, _ := setupAuthTest(t)

	status, out := postJSON(t, app, "/auth/register", map[string]string{
		"email": "not-an-email", "password": "password123", "role": models.RoleInvestor,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(out))

	status, _ = postJSON(t, app, "/auth/register", map[string]string{
		"email": "b@example.com", "password": "short", "role": models.RoleInvestor,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/auth/register", map[string]string{
		"email": "c@example.com", "password": "password123", "role": "SUPERUSER",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLogin_RequiresVerifiedEmail(t *testing.T) {
	app, _ := setupAuthTest(t)
	status, out := postJSON(t, app, "/auth/register", map[string]string{
		"email": "carol@example.com", "password": "password123", "role": models.RoleTenant,
	})
	require.Equal(t, fiber.StatusCreated, status)
	verifyURL := out["verifyUrl"].(string)

	status, out = postJSON(t, app, "/auth/login", map[string]string{
		"emailOrPhone": "carol@example.com", "password": "password123",
	})
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "EMAIL_NOT_VERIFIED", errorCode(out))

	// consume the verification link, then login succeeds
	token := verifyURL[strings.Index(verifyURL, "token=")+len("token="):]
	resp, err := app.Test(httptest.NewRequest("GET", "/auth/verify?token="+token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	status, out = postJSON(t, app, "/auth/login", map[string]string{
		"emailOrPhone": "carol@example.com", "password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, out["token"])
}

func TestLogin_WrongCredentials(t *testing.T) {
	app, db := setupAuthTest(t)
	status, _ := postJSON(t, app, "/auth/register", map[string]string{
		"email": "dave@example.com", "password": "password123", "role": models.RoleInvestor,
	})
	require.Equal(t, fiber.StatusCreated, status)
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "dave@example.com").Update("email_verified", true).Error)

	status, out := postJSON(t, app, "/auth/login", map[string]string{
		"emailOrPhone": "dave@example.com", "password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(out))

	status, out = postJSON(t, app, "/auth/login", map[string]string{
		"emailOrPhone": "nobody@example.com", "password": "password123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(out))
}

func TestVerify_InvalidToken(t *testing.T) {
	app, _ := setupAuthTest(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/auth/verify?token=bogus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestVerify_TokenIsSingleUse(t *testing.T) {
	app, _ := setupAuthTest(t)
	status, out := postJSON(t, app, "/auth/register", map[string]string{
		"email": "erin@example.com", "password": "password123", "role": models.RoleInvestor,
	})
	require.Equal(t, fiber.StatusCreated, status)
	verifyURL := out["verifyUrl"].(string)
	token := verifyURL[strings.Index(verifyURL, "token=")+len("token="):]

	resp, err := app.Test(httptest.NewRequest("GET", "/auth/verify?token="+token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/auth/verify?token="+token, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
