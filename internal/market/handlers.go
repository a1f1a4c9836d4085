package market

import (
	"brickly-backend/internal/middleware"
	"brickly-backend/internal/pkg/response"
	"brickly-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type Handlers struct {
	Service *Service
}

type sellOrderRequest struct {
	PropertyID       string          `json:"propertyId"`
	SharesForSale    int64           `json:"sharesForSale"`
	AskPricePerShare decimal.Decimal `json:"askPricePerShare"`
}

// CreateSellOrder POST /market/sell-orders (authenticated, KYC approved)
func (h *Handlers) CreateSellOrder(c *fiber.Ctx) error {
	var body sellOrderRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	propertyID, ok := validation.ParseUUID(body.PropertyID)
	if !ok {
		return response.ValidationError(c, "propertyId must be a valid UUID")
	}
	if body.SharesForSale <= 0 {
		return response.ValidationError(c, "sharesForSale must be a positive integer")
	}
	if !body.AskPricePerShare.IsPositive() {
		return response.ValidationError(c, "askPricePerShare must be positive")
	}

	user := middleware.GetUser(c)
	order, err := h.Service.CreateSellOrder(c.Context(), user.ID, propertyID, body.SharesForSale, body.AskPricePerShare)
	if err != nil {
		switch err {
		case ErrPropertyNotFound:
			return response.NotFound(c, err.Error())
		case ErrInsufficientShares:
			return response.Error(c, fiber.StatusBadRequest, "INSUFFICIENT_SHARES", err.Error())
		default:
			return response.Internal(c, "Failed to create sell order")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// ListSellOrders GET /market/sell-orders (public)
func (h *Handlers) ListSellOrders(c *fiber.Ctx) error {
	orders, err := h.Service.ListOpen(c.Context())
	if err != nil {
		return response.Internal(c, "Internal Server Error")
	}
	return c.JSON(orders)
}

type marketBuyRequest struct {
	SellOrderID string `json:"sellOrderId"`
	SharesToBuy int64  `json:"sharesToBuy"`
}

// Buy POST /market/buy (investor/admin/lister, KYC approved)
func (h *Handlers) Buy(c *fiber.Ctx) error {
	var body marketBuyRequest
	if err := c.BodyParser(&body); err != nil {
		return response.ValidationError(c, "Invalid request")
	}
	sellOrderID, ok := validation.ParseUUID(body.SellOrderID)
	if !ok {
		return response.ValidationError(c, "sellOrderId must be a valid UUID")
	}
	if body.SharesToBuy <= 0 {
		return response.ValidationError(c, "sharesToBuy must be a positive integer")
	}

	user := middleware.GetUser(c)
	result, err := h.Service.Buy(c.Context(), user.ID, sellOrderID, body.SharesToBuy)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			return response.NotFound(c, err.Error())
		case ErrPropertyNotFound:
			return response.NotFound(c, err.Error())
		case ErrOrderClosed:
			return response.Error(c, fiber.StatusBadRequest, "ORDER_CLOSED", err.Error())
		case ErrSellerInsufficient:
			return response.Error(c, fiber.StatusBadRequest, "SELLER_INSUFFICIENT", err.Error())
		case ErrInsufficientOrderShares:
			return response.Error(c, fiber.StatusBadRequest, "INSUFFICIENT_ORDER_SHARES", err.Error())
		default:
			return response.Internal(c, "Failed to buy shares")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
