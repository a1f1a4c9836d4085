package rentals

import (
	"context"
	"testing"

	"brickly-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRentalsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Property{}, &models.PropertyImage{}, &models.RentalApplication{},
	))
	return &Service{DB: db}, db
}

func seedProperty(t *testing.T, db *gorm.DB, status string) uuid.UUID {
	prop := models.Property{
		Address1: "300 Pine St", City: "Houston", State: "TX", Zip: "77002",
		Status: status,
	}
	require.NoError(t, db.Create(&prop).Error)
	return prop.ID
}

func TestListRentListed(t *testing.T) {
	svc, db := setupRentalsTest(t)
	rentListed := seedProperty(t, db, models.PropertyRentListed)
	seedProperty(t, db, models.PropertyListed)
	seedProperty(t, db, models.PropertyRented)

	props, err := svc.ListRentListed(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, rentListed, props[0].ID)
}

func TestApply_HappyPath(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyRentListed)
	tenantID := uuid.New()

	application, err := svc.Apply(context.Background(), tenantID, propertyID)
	require.NoError(t, err)
	assert.Equal(t, models.RentalPending, application.Status)
	assert.Equal(t, tenantID, application.TenantUserID)
}

func TestApply_NotRentListed(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyListed)

	_, err := svc.Apply(context.Background(), uuid.New(), propertyID)
	assert.ErrorIs(t, err, ErrNotRentListed)
}

func TestApply_UnknownProperty(t *testing.T) {
	svc, _ := setupRentalsTest(t)
	_, err := svc.Apply(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestApply_DuplicateBlocked(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyRentListed)
	tenantID := uuid.New()

	_, err := svc.Apply(context.Background(), tenantID, propertyID)
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), tenantID, propertyID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	// a rejection frees the tenant to apply again
	var app models.RentalApplication
	require.NoError(t, db.Where("tenant_user_id = ?", tenantID).First(&app).Error)
	_, err = svc.Reject(context.Background(), app.ID)
	require.NoError(t, err)
	_, err = svc.Apply(context.Background(), tenantID, propertyID)
	assert.NoError(t, err)
}

func TestApprove_MarksPropertyRented(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyRentListed)
	application, err := svc.Apply(context.Background(), uuid.New(), propertyID)
	require.NoError(t, err)

	rent := decimal.NewFromInt(2400)
	approved, err := svc.Approve(context.Background(), application.ID, &rent)
	require.NoError(t, err)
	assert.Equal(t, models.RentalApproved, approved.Status)
	require.NotNil(t, approved.RentAmount)
	assert.True(t, rent.Equal(*approved.RentAmount))

	var prop models.Property
	require.NoError(t, db.First(&prop, "id = ?", propertyID).Error)
	assert.Equal(t, models.PropertyRented, prop.Status)
}

func TestApprove_OnlyPendingOnRentListed(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyRentListed)
	application, err := svc.Apply(context.Background(), uuid.New(), propertyID)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), application.ID, nil)
	require.NoError(t, err)

	// already approved, and the property is RENTED now
	_, err = svc.Approve(context.Background(), application.ID, nil)
	assert.ErrorIs(t, err, ErrNotPending)

	// a second pending application on the now-RENTED property cannot be approved
	second := models.RentalApplication{
		PropertyID: propertyID, TenantUserID: uuid.New(), Status: models.RentalPending,
	}
	require.NoError(t, db.Create(&second).Error)
	_, err = svc.Approve(context.Background(), second.ID, nil)
	assert.ErrorIs(t, err, ErrNotRentListed)
}

func TestApprove_UnknownApplication(t *testing.T) {
	svc, _ := setupRentalsTest(t)
	_, err := svc.Approve(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestReject(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyRentListed)
	application, err := svc.Apply(context.Background(), uuid.New(), propertyID)
	require.NoError(t, err)

	rejected, err := svc.Reject(context.Background(), application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RentalRejected, rejected.Status)

	_, err = svc.Reject(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestPendingApplications_WithTenantProjection(t *testing.T) {
	svc, db := setupRentalsTest(t)
	propertyID := seedProperty(t, db, models.PropertyRentListed)

	tenant := models.User{Email: "tenant@example.com", PasswordHash: "x", Role: models.RoleTenant}
	require.NoError(t, db.Create(&tenant).Error)
	_, err := svc.Apply(context.Background(), tenant.ID, propertyID)
	require.NoError(t, err)

	apps, err := svc.PendingApplications(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Tenant)
	assert.Equal(t, "tenant@example.com", apps[0].Tenant.Email)
	require.NotNil(t, apps[0].Property)
	assert.Equal(t, propertyID, apps[0].Property.ID)
}
