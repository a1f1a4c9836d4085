package imports

import (
	"context"
	"testing"

	"brickly-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupImportsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MLSListing{}))
	return &Service{DB: db}, db
}

func TestSourceFromExternalID(t *testing.T) {
	assert.Equal(t, models.SourcePublic, SourceFromExternalID("pub-1001"))
	assert.Equal(t, models.SourcePartner, SourceFromExternalID("partner-2001"))
	assert.Equal(t, models.SourcePublic, SourceFromExternalID("misc-1"))
}

func TestSeed_LoadsStaticDataset(t *testing.T) {
	svc, db := setupImportsTest(t)

	count, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(MockListings()), count)

	var partners int64
	require.NoError(t, db.Model(&models.MLSListing{}).
		Where("source_type = ?", models.SourcePartner).Count(&partners).Error)
	assert.Equal(t, int64(4), partners)

	// reseed replaces rather than duplicates
	count, err = svc.Seed(context.Background())
	require.NoError(t, err)
	var total int64
	require.NoError(t, db.Model(&models.MLSListing{}).Count(&total).Error)
	assert.Equal(t, int64(count), total)
}

func TestSearch_FiltersBySourceAndTerm(t *testing.T) {
	svc, _ := setupImportsTest(t)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	cards, err := svc.Search(context.Background(), models.SourcePublic, "")
	require.NoError(t, err)
	assert.Len(t, cards, 6)
	for _, card := range cards {
		assert.NotEmpty(t, card.AddressLine)
		assert.NotEmpty(t, card.ThumbURL)
	}

	cards, err = svc.Search(context.Background(), models.SourcePartner, "houston")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "partner-2003", cards[0].ExternalID)

	cards, err = svc.Search(context.Background(), models.SourcePublic, "no-such-town")
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestDetail_Projection(t *testing.T) {
	svc, _ := setupImportsTest(t)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	view, err := svc.Detail(context.Background(), "partner-2001", models.SourcePartner)
	require.NoError(t, err)
	assert.Equal(t, "4501 Sunset Terrace", view.Address.Line1)
	assert.Equal(t, "Austin", view.Address.City)
	assert.Equal(t, 4, view.Facts.Beds)
	assert.Equal(t, 3050, view.Facts.Sqft)
	assert.True(t, view.Pricing.ListPrice.Equal(dec("735000")))
	require.NotNil(t, view.Attribution)
	assert.NotEmpty(t, view.Images)
}

func TestDetail_NotFoundAndWrongSource(t *testing.T) {
	svc, _ := setupImportsTest(t)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	_, err = svc.Detail(context.Background(), "pub-9999", models.SourcePublic)
	assert.ErrorIs(t, err, ErrListingNotFound)

	// the external id exists, but under the other source
	_, err = svc.Detail(context.Background(), "partner-2001", models.SourcePublic)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestClear_ReportsCount(t *testing.T) {
	svc, _ := setupImportsTest(t)
	seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)

	cleared, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(seeded), cleared)

	cleared, err = svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cleared)
}

func TestAdminList_TakesUpTo50(t *testing.T) {
	svc, _ := setupImportsTest(t)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	rows, err := svc.AdminList(context.Background(), models.SourcePublic, "")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, models.SourcePublic, rows[0].SourceType)
}
