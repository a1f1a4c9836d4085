package constants

const (
	CreateListing   = "create_listing"
	EditListing     = "edit_listing"
	ViewOwnListings = "view_own_listings"
	InvestBuy       = "invest_buy"
	MarketBuy       = "market_buy"
	RentalApply     = "rental_apply"
	ManageKyc       = "manage_kyc"
	ManageRentals   = "manage_rentals"
	ManageMLS       = "manage_mls"
	RentList        = "rent_list"
	DeleteProperty  = "delete_property"
)
