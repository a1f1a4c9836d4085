package kyc

import (
	"context"
	"testing"

	"brickly-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setupKycTest(t *testing.T) (*Service, *gorm.DB, *miniredis.Miniredis) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.KycProfile{}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		rdb.Close()
		mr.Close()
	})
	return &Service{DB: db, Rdb: rdb}, db, mr
}

func TestSubmit_UpsertsBackToPending(t *testing.T) {
	svc, db, _ := setupKycTest(t)
	userID := uuid.New()

	profile, err := svc.Submit(context.Background(), userID, datatypes.JSON([]byte(`{"ssnLast4":"1234"}`)))
	require.NoError(t, err)
	assert.Equal(t, models.KycPending, profile.Status)

	// approve, then resubmitting drops the profile back to PENDING
	_, err = svc.Decide(context.Background(), userID, models.KycApproved)
	require.NoError(t, err)
	profile, err = svc.Submit(context.Background(), userID, datatypes.JSON([]byte(`{"ssnLast4":"5678"}`)))
	require.NoError(t, err)
	assert.Equal(t, models.KycPending, profile.Status)

	var count int64
	require.NoError(t, db.Model(&models.KycProfile{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIsApproved_StatusTransitions(t *testing.T) {
	svc, _, _ := setupKycTest(t)
	userID := uuid.New()

	// no profile at all
	approved, err := svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = svc.Submit(context.Background(), userID, datatypes.JSON([]byte(`{}`)))
	require.NoError(t, err)
	approved, err = svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, approved)

	_, err = svc.Decide(context.Background(), userID, models.KycApproved)
	require.NoError(t, err)
	approved, err = svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, approved)

	_, err = svc.Decide(context.Background(), userID, models.KycRejected)
	require.NoError(t, err)
	approved, err = svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, approved)
}

func TestIsApproved_UsesCache(t *testing.T) {
	svc, db, mr := setupKycTest(t)
	userID := uuid.New()

	_, err := svc.Submit(context.Background(), userID, datatypes.JSON([]byte(`{}`)))
	require.NoError(t, err)
	_, err = svc.Decide(context.Background(), userID, models.KycApproved)
	require.NoError(t, err)

	// first check populates the cache
	approved, err := svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.True(t, mr.Exists("kyc:"+userID.String()))

	// cached value answers even when the row is gone
	require.NoError(t, db.Where("user_id = ?", userID).Delete(&models.KycProfile{}).Error)
	approved, err = svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestDecide_InvalidatesCache(t *testing.T) {
	svc, _, mr := setupKycTest(t)
	userID := uuid.New()

	_, err := svc.Submit(context.Background(), userID, datatypes.JSON([]byte(`{}`)))
	require.NoError(t, err)
	_, err = svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	require.True(t, mr.Exists("kyc:"+userID.String()))

	_, err = svc.Decide(context.Background(), userID, models.KycApproved)
	require.NoError(t, err)
	assert.False(t, mr.Exists("kyc:"+userID.String()))

	approved, err := svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, approved)
}

func TestDecide_UnknownProfile(t *testing.T) {
	svc, _, _ := setupKycTest(t)
	_, err := svc.Decide(context.Background(), uuid.New(), models.KycApproved)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSubmissions_PendingOldestFirst(t *testing.T) {
	svc, db, _ := setupKycTest(t)

	alice := models.User{Email: "alice@example.com", PasswordHash: "x", Role: models.RoleInvestor}
	bob := models.User{Email: "bob@example.com", PasswordHash: "x", Role: models.RoleLister}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	_, err := svc.Submit(context.Background(), alice.ID, datatypes.JSON([]byte(`{}`)))
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), bob.ID, datatypes.JSON([]byte(`{}`)))
	require.NoError(t, err)
	_, err = svc.Decide(context.Background(), bob.ID, models.KycApproved)
	require.NoError(t, err)

	subs, err := svc.Submissions(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, alice.ID, subs[0]["userId"])
	user, ok := subs[0]["user"].(models.PublicUser)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestIsApproved_NilRedisFallsBackToDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KycProfile{}))
	svc := &Service{DB: db}

	userID := uuid.New()
	_, err = svc.Submit(context.Background(), userID, datatypes.JSON([]byte(`{}`)))
	require.NoError(t, err)
	_, err = svc.Decide(context.Background(), userID, models.KycApproved)
	require.NoError(t, err)

	approved, err := svc.IsApproved(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, approved)
}
