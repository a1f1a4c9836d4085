package imports

import (
	"context"
	"encoding/json"
	"strings"

	"brickly-backend/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
	// Feed is optional; when nil, Seed always uses the static dataset.
	Feed *FeedClient
}

// CardView is the compact search-result projection.
type CardView struct {
	ExternalID  string          `json:"externalId"`
	AddressLine string          `json:"addressLine"`
	City        string          `json:"city"`
	State       string          `json:"state"`
	Zip         string          `json:"zip"`
	ListPrice   decimal.Decimal `json:"listPrice"`
	Beds        int             `json:"beds"`
	Baths       decimal.Decimal `json:"baths"`
	ThumbURL    string          `json:"thumbUrl"`
	Status      string          `json:"status"`
}

func termFilter(db *gorm.DB, term string) *gorm.DB {
	if term == "" {
		return db
	}
	like := "%" + strings.ToLower(term) + "%"
	return db.Where("lower(address) LIKE ? OR lower(city) LIKE ? OR lower(zip) LIKE ?", like, like, like)
}

// Search returns the newest 10 staged listings for a source, optionally
// filtered by a term over address, city and zip.
func (s *Service) Search(ctx context.Context, sourceType, term string) ([]CardView, error) {
	var rows []models.MLSListing
	query := s.DB.WithContext(ctx).Where("source_type = ?", sourceType)
	query = termFilter(query, term)
	err := query.Order("created_at DESC").Limit(10).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]CardView, len(rows))
	for i, row := range rows {
		out[i] = CardView{
			ExternalID:  row.ExternalID,
			AddressLine: row.Address,
			City:        row.City,
			State:       row.State,
			Zip:         row.Zip,
			ListPrice:   row.ListPrice,
			Beds:        row.Beds,
			Baths:       row.Baths,
			ThumbURL:    row.ThumbURL,
			Status:      row.Status,
		}
	}
	return out, nil
}

// DetailView is the full projection for one staged listing.
type DetailView struct {
	ExternalID string `json:"externalId"`
	Address    struct {
		Line1 string `json:"line1"`
		City  string `json:"city"`
		State string `json:"state"`
		Zip   string `json:"zip"`
	} `json:"address"`
	Facts struct {
		Beds      int             `json:"beds"`
		Baths     decimal.Decimal `json:"baths"`
		Sqft      int             `json:"sqft"`
		YearBuilt int             `json:"yearBuilt"`
	} `json:"facts"`
	Pricing struct {
		ListPrice    decimal.Decimal `json:"listPrice"`
		RentEstimate decimal.Decimal `json:"rentEstimate"`
	} `json:"pricing"`
	Images      json.RawMessage `json:"images"`
	ThumbURL    string          `json:"thumbUrl"`
	Status      string          `json:"status"`
	Attribution *string         `json:"attribution"`
}

// Detail looks up one staged listing by external id within a source.
func (s *Service) Detail(ctx context.Context, externalID, sourceType string) (*DetailView, error) {
	var row models.MLSListing
	err := s.DB.WithContext(ctx).
		Where("external_id = ? AND source_type = ?", externalID, sourceType).
		First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	view := DetailView{
		ExternalID:  row.ExternalID,
		ThumbURL:    row.ThumbURL,
		Status:      row.Status,
		Attribution: row.Attribution,
	}
	view.Address.Line1 = row.Address
	view.Address.City = row.City
	view.Address.State = row.State
	view.Address.Zip = row.Zip
	view.Facts.Beds = row.Beds
	view.Facts.Baths = row.Baths
	view.Facts.Sqft = row.Sqft
	view.Facts.YearBuilt = row.YearBuilt
	view.Pricing.ListPrice = row.ListPrice
	view.Pricing.RentEstimate = row.RentEstimate
	view.Images = json.RawMessage(row.Images)
	if view.Images == nil {
		view.Images = json.RawMessage("[]")
	}
	return &view, nil
}

// AdminView is the staging-table projection for the admin console.
type AdminView struct {
	ExternalID string          `json:"externalId"`
	Address    string          `json:"address"`
	City       string          `json:"city"`
	State      string          `json:"state"`
	Zip        string          `json:"zip"`
	ListPrice  decimal.Decimal `json:"listPrice"`
	Status     string          `json:"status"`
	SourceType string          `json:"sourceType"`
	ThumbURL   string          `json:"thumbUrl"`
}

// AdminList returns up to 50 staged listings for a source.
func (s *Service) AdminList(ctx context.Context, sourceType, term string) ([]AdminView, error) {
	var rows []models.MLSListing
	query := s.DB.WithContext(ctx).Where("source_type = ?", sourceType)
	query = termFilter(query, term)
	err := query.Order("created_at DESC").Limit(50).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]AdminView, len(rows))
	for i, row := range rows {
		out[i] = AdminView{
			ExternalID: row.ExternalID,
			Address:    row.Address,
			City:       row.City,
			State:      row.State,
			Zip:        row.Zip,
			ListPrice:  row.ListPrice,
			Status:     row.Status,
			SourceType: row.SourceType,
			ThumbURL:   row.ThumbURL,
		}
	}
	return out, nil
}

// Seed replaces the staging table with the feed dataset. When a feed client
// is configured it is tried first; any feed failure falls back to the static
// dataset so a reseed always succeeds.
func (s *Service) Seed(ctx context.Context) (int, error) {
	dataset := MockListings()
	if s.Feed != nil {
		fetched, err := s.Feed.Fetch(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("listing feed unavailable, seeding from static dataset")
		} else if len(fetched) > 0 {
			dataset = fetched
		}
	}

	count := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.MLSListing{}).Error; err != nil {
			return err
		}
		for _, item := range dataset {
			images, err := json.Marshal(item.Images)
			if err != nil {
				return err
			}
			row := models.MLSListing{
				ExternalID:   item.ID,
				SourceType:   SourceFromExternalID(item.ID),
				Address:      item.Address,
				City:         item.City,
				State:        item.State,
				Zip:          item.Zip,
				ListPrice:    item.ListPrice,
				RentEstimate: item.RentEstimate,
				Beds:         item.Beds,
				Baths:        item.Baths,
				Sqft:         item.Sqft,
				YearBuilt:    item.YearBuilt,
				Images:       images,
				ThumbURL:     item.ThumbURL,
				Status:       item.Status,
				Attribution:  item.Attribution,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Clear empties the staging table and reports how many rows were removed.
func (s *Service) Clear(ctx context.Context) (int64, error) {
	result := s.DB.WithContext(ctx).Where("1 = 1").Delete(&models.MLSListing{})
	return result.RowsAffected, result.Error
}
