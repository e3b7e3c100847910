package models

import "time"

// Sale records a product removed from the live listing and its winning bid.
type Sale struct {
	Product    *Product
	WinningBid Bid
	SoldAt     time.Time
}

func (s Sale) String() string {
	return s.Product.String() + " sold to " + s.WinningBid.Bidder().String() + " for " + FormatMoney(s.WinningBid.BidPrice())
}
