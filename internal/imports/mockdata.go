package imports

import (
	"strings"

	"brickly-backend/internal/models"

	"github.com/shopspring/decimal"
)

// SeedListing is one row of the staging feed, either from the static dataset
// below or fetched from a configured remote feed.
type SeedListing struct {
	ID           string          `json:"id"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	Zip          string          `json:"zip"`
	ListPrice    decimal.Decimal `json:"listPrice"`
	RentEstimate decimal.Decimal `json:"rentEstimate"`
	Beds         int             `json:"beds"`
	Baths        decimal.Decimal `json:"baths"`
	Sqft         int             `json:"sqft"`
	YearBuilt    int             `json:"yearBuilt"`
	Images       []string        `json:"images"`
	ThumbURL     string          `json:"thumbUrl"`
	Status       string          `json:"status"`
	Attribution  *string         `json:"attribution"`
}

// SourceFromExternalID derives the source from the feed's id convention:
// partner-* rows come from partner brokerages, everything else is public.
func SourceFromExternalID(externalID string) string {
	if strings.HasPrefix(externalID, "partner-") {
		return models.SourcePartner
	}
	return models.SourcePublic
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

var mockListings = []SeedListing{
	{
		ID: "pub-1001", Address: "482 Maple Grove Ln", City: "Austin", State: "TX", Zip: "78704",
		ListPrice: dec("425000"), RentEstimate: dec("2650"), Beds: 3, Baths: dec("2"), Sqft: 1780, YearBuilt: 2004,
		Images: []string{
			"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200",
			"https://images.unsplash.com/photo-1570129477492-45c003edd2be?w=1200",
		},
		ThumbURL: "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=400",
		Status:   "ACTIVE",
	},
	{
		ID: "pub-1002", Address: "77 Birchwood Ct", City: "Austin", State: "TX", Zip: "78745",
		ListPrice: dec("389900"), RentEstimate: dec("2400"), Beds: 3, Baths: dec("2.5"), Sqft: 1920, YearBuilt: 2011,
		Images: []string{
			"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200",
		},
		ThumbURL: "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=400",
		Status:   "ACTIVE",
	},
	{
		ID: "pub-1003", Address: "1509 Cedar Springs Rd", City: "Dallas", State: "TX", Zip: "75201",
		ListPrice: dec("512000"), RentEstimate: dec("3100"), Beds: 2, Baths: dec("2"), Sqft: 1450, YearBuilt: 2016,
		Images: []string{
			"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200",
			"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200",
		},
		ThumbURL: "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=400",
		Status:   "ACTIVE",
	},
	{
		ID: "pub-1004", Address: "238 Juniper St", City: "San Antonio", State: "TX", Zip: "78205",
		ListPrice: dec("289000"), RentEstimate: dec("1850"), Beds: 3, Baths: dec("1.5"), Sqft: 1510, YearBuilt: 1996,
		Images: []string{
			"https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=1200",
		},
		ThumbURL: "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?w=400",
		Status:   "ACTIVE",
	},
	{
		ID: "pub-1005", Address: "914 Lakeshore Dr", City: "Houston", State: "TX", Zip: "77007",
		ListPrice: dec("610000"), RentEstimate: dec("3550"), Beds: 4, Baths: dec("3"), Sqft: 2620, YearBuilt: 2019,
		Images: []string{
			"https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=1200",
			"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=1200",
		},
		ThumbURL: "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=400",
		Status:   "ACTIVE",
	},
	{
		ID: "pub-1006", Address: "63 Alder Bend Ave", City: "Fort Worth", State: "TX", Zip: "76102",
		ListPrice: dec("335500"), RentEstimate: dec("2150"), Beds: 3, Baths: dec("2"), Sqft: 1690, YearBuilt: 2008,
		Images: []string{
			"https://images.unsplash.com/photo-1576941089067-2de3c901e126?w=1200",
		},
		ThumbURL: "https://images.unsplash.com/photo-1576941089067-2de3c901e126?w=400",
		Status:   "PENDING",
	},
	{
		ID: "partner-2001", Address: "4501 Sunset Terrace", City: "Austin", State: "TX", Zip: "78731",
		ListPrice: dec("735000"), RentEstimate: dec("4200"), Beds: 4, Baths: dec("3.5"), Sqft: 3050, YearBuilt: 2021,
		Images: []string{
			"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200",
			"https://images.unsplash.com/photo-1613977257363-707ba9348227?w=1200",
		},
		ThumbURL:    "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=400",
		Status:      "ACTIVE",
		Attribution: strPtr("Listing courtesy of Lone Star Partners Realty"),
	},
	{
		ID: "partner-2002", Address: "128 Granite Falls Blvd", City: "Dallas", State: "TX", Zip: "75204",
		ListPrice: dec("458000"), RentEstimate: dec("2900"), Beds: 2, Baths: dec("2"), Sqft: 1380, YearBuilt: 2018,
		Images: []string{
			"https://images.unsplash.com/photo-1583608205776-bfd35f0d9f83?w=1200",
		},
		ThumbURL:    "https://images.unsplash.com/photo-1583608205776-bfd35f0d9f83?w=400",
		Status:      "ACTIVE",
		Attribution: strPtr("Listing courtesy of Granite Partners Group"),
	},
	{
		ID: "partner-2003", Address: "902 Willow Bend Way", City: "Houston", State: "TX", Zip: "77019",
		ListPrice: dec("829000"), RentEstimate: dec("4750"), Beds: 5, Baths: dec("4"), Sqft: 3480, YearBuilt: 2015,
		Images: []string{
			"https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=1200",
			"https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde?w=1200",
		},
		ThumbURL:    "https://images.unsplash.com/photo-1600585154526-990dced4db0d?w=400",
		Status:      "ACTIVE",
		Attribution: strPtr("Listing courtesy of Bayou City Estates"),
	},
	{
		ID: "partner-2004", Address: "316 Copperleaf Cir", City: "San Antonio", State: "TX", Zip: "78209",
		ListPrice: dec("399000"), RentEstimate: dec("2500"), Beds: 3, Baths: dec("2.5"), Sqft: 2010, YearBuilt: 2013,
		Images: []string{
			"https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=1200",
		},
		ThumbURL:    "https://images.unsplash.com/photo-1600566753190-17f0baa2a6c3?w=400",
		Status:      "ACTIVE",
		Attribution: strPtr("Listing courtesy of Alamo Partner Homes"),
	},
}

// MockListings returns a copy of the static seed dataset.
func MockListings() []SeedListing {
	out := make([]SeedListing, len(mockListings))
	copy(out, mockListings)
	return out
}
