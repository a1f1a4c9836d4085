package market

import (
	"context"

	"brickly-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

// CreateSellOrder lists up to the caller's owned share count for sale.
// Shares are not reserved here: the holding stays untouched until a buyer
// fills the order, and trade execution re-validates the seller's balance.
func (s *Service) CreateSellOrder(ctx context.Context, userID, propertyID uuid.UUID, sharesForSale int64, askPricePerShare decimal.Decimal) (*models.SellOrder, error) {
	var order models.SellOrder

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shareClass models.ShareClass
		if err := tx.Where("property_id = ?", propertyID).First(&shareClass).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrPropertyNotFound
			}
			return err
		}

		var holding models.Holding
		err := tx.Where("user_id = ? AND share_class_id = ?", userID, shareClass.ID).
			First(&holding).Error
		if err == gorm.ErrRecordNotFound || (err == nil && holding.SharesOwned < sharesForSale) {
			return ErrInsufficientShares
		}
		if err != nil {
			return err
		}

		order = models.SellOrder{
			UserID:           userID,
			PropertyID:       propertyID,
			SharesForSale:    sharesForSale,
			AskPricePerShare: askPricePerShare,
			Status:           models.SellOrderOpen,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SellOrderView is an open order with the seller's public projection.
type SellOrderView struct {
	models.SellOrder
	User *models.PublicUser `json:"user"`
}

// ListOpen returns OPEN sell orders with property and seller, newest first.
func (s *Service) ListOpen(ctx context.Context) ([]SellOrderView, error) {
	var orders []models.SellOrder
	err := s.DB.WithContext(ctx).
		Preload("Property").
		Preload("User").
		Where("status = ?", models.SellOrderOpen).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	out := make([]SellOrderView, len(orders))
	for i, o := range orders {
		view := SellOrderView{SellOrder: o}
		if o.User != nil {
			pub := o.User.Public(false)
			view.User = &pub
		}
		out[i] = view
	}
	return out, nil
}

// TradeResult carries everything POST /market/buy returns.
type TradeResult struct {
	Trade   models.Trade     `json:"trade"`
	Order   models.SellOrder `json:"order"`
	Holding models.Holding   `json:"holding"`
}

// Buy fills part or all of a sell order inside one all-or-nothing
// transaction: decrement the seller's holding, credit the buyer's,
// decrement the order's remainder, close it at zero, and append the trade.
//
// Every precondition-and-mutate step is a single conditional UPDATE whose
// affected-row count is the success signal; there is no read-then-check
// window for a concurrent request to exploit. The seller decrement also
// covers the unreserved-listing window from CreateSellOrder.
func (s *Service) Buy(ctx context.Context, buyerID, sellOrderID uuid.UUID, sharesToBuy int64) (*TradeResult, error) {
	var result TradeResult

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order models.SellOrder
		if err := tx.Where("id = ?", sellOrderID).First(&order).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status != models.SellOrderOpen {
			return ErrOrderClosed
		}

		var shareClass models.ShareClass
		if err := tx.Where("property_id = ?", order.PropertyID).First(&shareClass).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrPropertyNotFound
			}
			return err
		}

		var sellerHolding models.Holding
		err := tx.Where("user_id = ? AND share_class_id = ?", order.UserID, shareClass.ID).
			First(&sellerHolding).Error
		if err == gorm.ErrRecordNotFound {
			return ErrSellerInsufficient
		}
		if err != nil {
			return err
		}

		sellerUpdated := tx.Model(&models.Holding{}).
			Where("id = ? AND shares_owned >= ?", sellerHolding.ID, sharesToBuy).
			UpdateColumn("shares_owned", gorm.Expr("shares_owned - ?", sharesToBuy))
		if sellerUpdated.Error != nil {
			return sellerUpdated.Error
		}
		if sellerUpdated.RowsAffected == 0 {
			return ErrSellerInsufficient
		}

		var buyerHolding models.Holding
		err = tx.Where("user_id = ? AND share_class_id = ?", buyerID, shareClass.ID).
			First(&buyerHolding).Error
		if err == gorm.ErrRecordNotFound {
			buyerHolding = models.Holding{
				UserID:       buyerID,
				ShareClassID: shareClass.ID,
				SharesOwned:  sharesToBuy,
			}
			if err := tx.Create(&buyerHolding).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			if err := tx.Model(&buyerHolding).
				UpdateColumn("shares_owned", gorm.Expr("shares_owned + ?", sharesToBuy)).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", buyerHolding.ID).First(&buyerHolding).Error; err != nil {
				return err
			}
		}

		orderUpdated := tx.Model(&models.SellOrder{}).
			Where("id = ? AND status = ? AND shares_for_sale >= ?", order.ID, models.SellOrderOpen, sharesToBuy).
			UpdateColumn("shares_for_sale", gorm.Expr("shares_for_sale - ?", sharesToBuy))
		if orderUpdated.Error != nil {
			return orderUpdated.Error
		}
		if orderUpdated.RowsAffected == 0 {
			return ErrInsufficientOrderShares
		}

		if err := tx.Where("id = ?", order.ID).First(&order).Error; err != nil {
			return err
		}
		if order.SharesForSale == 0 && order.Status != models.SellOrderFilled {
			if err := tx.Model(&order).Update("status", models.SellOrderFilled).Error; err != nil {
				return err
			}
			order.Status = models.SellOrderFilled
		}

		trade := models.Trade{
			SellOrderID:   order.ID,
			PropertyID:    order.PropertyID,
			BuyerUserID:   buyerID,
			SellerUserID:  order.UserID,
			SharesTraded:  sharesToBuy,
			PricePerShare: order.AskPricePerShare,
		}
		if err := tx.Create(&trade).Error; err != nil {
			return err
		}

		result = TradeResult{Trade: trade, Order: order, Holding: buyerHolding}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
