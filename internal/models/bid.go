package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryMethod selects the fulfilment variant of a bid.
type DeliveryMethod int

const (
	// Pickup is the click and collect variant.
	Pickup DeliveryMethod = iota
	// HomeDelivery ships the item to the winning bidder.
	HomeDelivery
)

var (
	taxRate              = decimal.RequireFromString("0.15")
	pickupSaleCharge     = decimal.NewFromInt(10)
	deliverySaleCharge   = decimal.NewFromInt(20)
	deliveryTaxSurcharge = decimal.NewFromInt(5)
)

// DeliveryMethodFor maps a home delivery preference to its variant.
func DeliveryMethodFor(homeDelivery bool) DeliveryMethod {
	if homeDelivery {
		return HomeDelivery
	}
	return Pickup
}

func (d DeliveryMethod) String() string {
	switch d {
	case HomeDelivery:
		return "home_delivery"
	default:
		return "pickup"
	}
}

// SaleCharge is the flat fee of the variant.
func (d DeliveryMethod) SaleCharge() decimal.Decimal {
	if d == HomeDelivery {
		return deliverySaleCharge
	}
	return pickupSaleCharge
}

// SaleTax computes the tax due on a bid price for the variant.
func (d DeliveryMethod) SaleTax(price decimal.Decimal) decimal.Decimal {
	tax := price.Mul(taxRate)
	if d == HomeDelivery {
		return tax.Add(deliveryTaxSurcharge)
	}
	return tax
}

// Bid is an immutable offer placed on a product. Bids are only created by Product.PlaceBid.
type Bid struct {
	price    decimal.Decimal
	bidder   *Client
	method   DeliveryMethod
	placedAt time.Time
}

func newBid(price decimal.Decimal, bidder *Client, method DeliveryMethod) Bid {
	return Bid{
		price:    price,
		bidder:   bidder,
		method:   method,
		placedAt: time.Now().UTC(),
	}
}

func (b Bid) BidPrice() decimal.Decimal      { return b.price }
func (b Bid) Bidder() *Client                { return b.bidder }
func (b Bid) DeliveryMethod() DeliveryMethod { return b.method }
func (b Bid) PlacedAt() time.Time            { return b.placedAt }

// SaleCharge returns the flat fee for the bid's delivery method.
func (b Bid) SaleCharge() decimal.Decimal { return b.method.SaleCharge() }

// SaleTax returns the tax for the bid's delivery method.
func (b Bid) SaleTax() decimal.Decimal { return b.method.SaleTax(b.price) }

func (b Bid) String() string {
	return b.bidder.String() + " bid " + FormatMoney(b.price)
}
