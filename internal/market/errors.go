package market

import "errors"

var (
	ErrPropertyNotFound        = errors.New("Property not found")
	ErrOrderNotFound           = errors.New("Sell order not found")
	ErrOrderClosed             = errors.New("Sell order is not open")
	ErrInsufficientShares      = errors.New("Not enough shares owned")
	ErrSellerInsufficient      = errors.New("Seller has insufficient shares")
	ErrInsufficientOrderShares = errors.New("Not enough shares in sell order")
)
