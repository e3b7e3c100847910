package models

import (
	"auction-house/internal/auctionerrors"
	"auction-house/utils"
	"sync"

	"github.com/shopspring/decimal"
)

// ProductStatus describes where a live product is in its sale lifecycle.
type ProductStatus string

const (
	ProductStatusListed   ProductStatus = "listed"
	ProductStatusBiddable ProductStatus = "biddable"
	ProductStatusSold     ProductStatus = "sold"
)

// Product is an item advertised by a client. Its bid log is append-only and
// strictly increasing in price, starting above the initial price.
type Product struct {
	mu           sync.RWMutex
	id           string
	name         string
	productType  string
	initialPrice decimal.Decimal
	client       *Client
	bidLog       []Bid
	sold         bool
}

// NewProduct creates a product advertised by client. The initial price must not be negative.
func NewProduct(initialPrice decimal.Decimal, client *Client) (*Product, error) {
	if initialPrice.IsNegative() {
		return nil, auctionerrors.ErrNegativeInitialPrice
	}
	return &Product{
		id:           utils.GenerateID(),
		initialPrice: initialPrice,
		client:       client,
	}, nil
}

// ID is an opaque handle shells use to address the product.
func (p *Product) ID() string { return p.id }

// Client returns the advertising client.
func (p *Product) Client() *Client { return p.client }

func (p *Product) InitialPrice() decimal.Decimal { return p.initialPrice }

func (p *Product) Name() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.name
}

func (p *Product) Type() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.productType
}

// SetName sets a non-empty product name
func (p *Product) SetName(name string) error {
	if name == "" {
		return auctionerrors.ErrEmptyProductName
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = name
	return nil
}

// SetType sets a non-empty product type, used as a search key
func (p *Product) SetType(productType string) error {
	if productType == "" {
		return auctionerrors.ErrEmptyProductType
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.productType = productType
	return nil
}

// PlaceBid appends a bid if bidPrice is strictly greater than the current price.
// Equal bids are rejected, so the first bidder at a price wins it. A sold
// product accepts no further bids.
func (p *Product) PlaceBid(bidPrice decimal.Decimal, bidder *Client, homeDelivery bool) (Bid, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sold {
		return Bid{}, auctionerrors.ErrProductSold
	}
	if !bidPrice.GreaterThan(p.price()) {
		return Bid{}, auctionerrors.ErrBidTooLow
	}
	bid := newBid(bidPrice, bidder, DeliveryMethodFor(homeDelivery))
	p.bidLog = append(p.bidLog, bid)
	return bid, nil
}

// Price is the latest bid price, or the initial price when no bids were made.
func (p *Product) Price() decimal.Decimal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.price()
}

func (p *Product) price() decimal.Decimal {
	if len(p.bidLog) == 0 {
		return p.initialPrice
	}
	return p.bidLog[len(p.bidLog)-1].price
}

func (p *Product) HasBids() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.bidLog) > 0
}

// LatestBid returns the highest bid so far, or ErrNoBids.
func (p *Product) LatestBid() (Bid, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if len(p.bidLog) == 0 {
		return Bid{}, auctionerrors.ErrNoBids
	}
	return p.bidLog[len(p.bidLog)-1], nil
}

// Bids returns a copy of the bid log in chronological order.
func (p *Product) Bids() []Bid {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Bid(nil), p.bidLog...)
}

// MarkSold freezes the bid log. The registry calls it when it takes the product off sale.
func (p *Product) MarkSold() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sold = true
}

func (p *Product) Sold() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sold
}

func (p *Product) Status() ProductStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch {
	case p.sold:
		return ProductStatusSold
	case len(p.bidLog) > 0:
		return ProductStatusBiddable
	}
	return ProductStatusListed
}

func (p *Product) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.productType + ", " + p.name + ": " + FormatMoney(p.price())
}
