package listings

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

func setupListingsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Property{}, &models.PropertyImage{},
		&models.Listing{}, &models.ShareClass{},
	))
	return &Service{DB: db}, db
}

func bundleInput(listerID uuid.UUID) CreateInput {
	sqft := 1800
	return CreateInput{
		ListerUserID: listerID,
		Property: PropertyInput{
			Address1:   "12 Elm St",
			City:       "Austin",
			State:      "TX",
			Zip:        "78701",
			SquareFeet: &sqft,
		},
		Listing: ListingInput{
			AskingPrice:  decimal.NewFromInt(450000),
			BonusPercent: decimal.NewFromInt(2),
		},
		ShareClass: ShareClassInput{
			TotalShares:            10000,
			ReferencePricePerShare: decimal.NewFromInt(45),
		},
		Images: []string{
			"https://example.com/a.jpg",
			"https://example.com/b.jpg",
		},
	}
}

func TestCreateBundle_CreatesEverything(t *testing.T) {
	svc, db := setupListingsTest(t)
	listerID := uuid.New()

	result, err := svc.CreateBundle(context.Background(), bundleInput(listerID))
	require.NoError(t, err)

	assert.Equal(t, models.PropertyListed, result.Property.Status)
	assert.Equal(t, models.PropertyHouse, result.Property.Type)
	assert.Nil(t, result.Property.SourceType)
	assert.Equal(t, listerID, result.Listing.ListerUserID)
	assert.Equal(t, models.ListingListed, result.Listing.Status)
	assert.Equal(t, int64(10000), result.ShareClass.TotalShares)
	assert.Equal(t, int64(10000), result.ShareClass.SharesAvailable)
	assert.Equal(t, 2, result.ImagesCreated)

	var images []models.PropertyImage
	require.NoError(t, db.Where("property_id = ?", result.Property.ID).
		Order("sort_order ASC").Find(&images).Error)
	require.Len(t, images, 2)
	assert.Equal(t, 0, images[0].SortOrder)
	assert.Equal(t, "https://example.com/a.jpg", images[0].URL)
}

func TestCreateBundle_RecordsProvenance(t *testing.T) {
	svc, _ := setupListingsTest(t)
	attribution := "Listing courtesy of Example Realty"
	in := bundleInput(uuid.New())
	in.Provenance = &Provenance{
		SourceType:  models.SourcePartner,
		ExternalID:  "partner-2001",
		Attribution: &attribution,
	}

	result, err := svc.CreateBundle(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, result.Property.SourceType)
	assert.Equal(t, models.SourcePartner, *result.Property.SourceType)
	require.NotNil(t, result.Property.SourceRefID)
	assert.Equal(t, "partner-2001", *result.Property.SourceRefID)
	assert.NotNil(t, result.Property.ImportedAt)
	require.NotNil(t, result.Property.SourceAttribution)
	assert.Equal(t, attribution, *result.Property.SourceAttribution)
}

func TestMine_OnlyOwnListings(t *testing.T) {
	svc, _ := setupListingsTest(t)
	mine := uuid.New()
	other := uuid.New()

	_, err := svc.CreateBundle(context.Background(), bundleInput(mine))
	require.NoError(t, err)
	_, err = svc.CreateBundle(context.Background(), bundleInput(other))
	require.NoError(t, err)

	out, err := svc.Mine(context.Background(), mine)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, mine, out[0].ListerUserID)
	require.NotNil(t, out[0].Property)
	require.NotNil(t, out[0].Property.ShareClass)
	assert.Len(t, out[0].Property.Images, 2)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc, _ := setupListingsTest(t)
	listerID := uuid.New()
	created, err := svc.CreateBundle(context.Background(), bundleInput(listerID))
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(475000)
	newCity := "Round Rock"
	updated, err := svc.Update(context.Background(), created.Listing.ID, listerID, UpdateInput{
		Property: &PropertyPatch{City: &newCity},
		Listing:  &ListingPatch{AskingPrice: &newPrice},
	})
	require.NoError(t, err)
	assert.True(t, newPrice.Equal(updated.AskingPrice))
	require.NotNil(t, updated.Property)
	assert.Equal(t, "Round Rock", updated.Property.City)
	// untouched fields stay put
	assert.Equal(t, "12 Elm St", updated.Property.Address1)
	assert.True(t, decimal.NewFromInt(2).Equal(updated.BonusPercent))
}

func TestUpdate_NonOwnerGetsNotFound(t *testing.T) {
	svc, _ := setupListingsTest(t)
	created, err := svc.CreateBundle(context.Background(), bundleInput(uuid.New()))
	require.NoError(t, err)

	price := decimal.NewFromInt(1)
	_, err = svc.Update(context.Background(), created.Listing.ID, uuid.New(), UpdateInput{
		Listing: &ListingPatch{AskingPrice: &price},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValidateBundle(t *testing.T) {
	in := bundleInput(uuid.New())
	assert.Empty(t, ValidateBundle(in.Property, in.Listing, in.ShareClass, in.Images))

	bad := in
	bad.Property.Address1 = ""
	assert.NotEmpty(t, ValidateBundle(bad.Property, bad.Listing, bad.ShareClass, bad.Images))

	bad = in
	bad.ShareClass.TotalShares = 0
	assert.NotEmpty(t, ValidateBundle(bad.Property, bad.Listing, bad.ShareClass, bad.Images))

	bad = in
	bad.Listing.AskingPrice = decimal.NewFromInt(-1)
	assert.NotEmpty(t, ValidateBundle(bad.Property, bad.Listing, bad.ShareClass, bad.Images))

	bad = in
	bad.Images = []string{"not-a-url"}
	assert.NotEmpty(t, ValidateBundle(bad.Property, bad.Listing, bad.ShareClass, bad.Images))
}
