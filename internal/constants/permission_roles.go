package constants

import "brickly-backend/internal/models"

// PermissionRoles maps each permission to the roles allowed to perform it.
var PermissionRoles = map[string][]string{
	CreateListing:   {models.RoleAdmin, models.RoleLister},
	EditListing:     {models.RoleLister},
	ViewOwnListings: {models.RoleLister},
	InvestBuy:       {models.RoleInvestor, models.RoleAdmin, models.RoleLister},
	MarketBuy:       {models.RoleInvestor, models.RoleAdmin, models.RoleLister},
	RentalApply:     {models.RoleTenant},
	ManageKyc:       {models.RoleAdmin},
	ManageRentals:   {models.RoleAdmin},
	ManageMLS:       {models.RoleAdmin},
	RentList:        {models.RoleAdmin},
	DeleteProperty:  {models.RoleAdmin},
}

// AllowedRole returns true if role is in the list of allowed roles for the permission.
func AllowedRole(permission, role string) bool {
	roles, ok := PermissionRoles[permission]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
