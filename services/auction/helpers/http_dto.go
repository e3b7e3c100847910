package helpers

import (
	"time"

	"auction-house/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type RegisterClientRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterProductRequest struct {
	InitialPrice decimal.Decimal `json:"initial_price"`
	Type         string          `json:"type"`
	Name         string          `json:"name"`
}

type PlaceBidRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	HomeDelivery bool            `json:"home_delivery"`
}

type ClientResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionResponse struct {
	Token     string         `json:"token"`
	Client    ClientResponse `json:"client"`
	StartedAt string         `json:"started_at"`
}

type ProductResponse struct {
	ProductID    string `json:"product_id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	InitialPrice string `json:"initial_price"`
	Price        string `json:"price"`
	HasBids      bool   `json:"has_bids"`
	Status       string `json:"status"`
	Owner        string `json:"owner"`
}

type BidResponse struct {
	Bidder     string `json:"bidder"`
	Amount     string `json:"amount"`
	Delivery   string `json:"delivery"`
	SaleCharge string `json:"sale_charge"`
	SaleTax    string `json:"sale_tax"`
	PlacedAt   string `json:"placed_at"`
}

type SaleResponse struct {
	Product    ProductResponse `json:"product"`
	WinningBid BidResponse     `json:"winning_bid"`
	Status     string          `json:"status"`
	SoldAt     string          `json:"sold_at"`
}

const statusSold = "sold"

func NewClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{Name: c.Name(), Email: c.Email()}
}

func NewSessionResponse(s *models.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		Client:    NewClientResponse(s.Client),
		StartedAt: s.StartedAt.UTC().Format(time.RFC3339),
	}
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ID(),
		Type:         p.Type(),
		Name:         p.Name(),
		InitialPrice: p.InitialPrice().StringFixed(2),
		Price:        p.Price().StringFixed(2),
		HasBids:      p.HasBids(),
		Status:       string(p.Status()),
		Owner:        p.Client().String(),
	}
}

func NewProductResponses(products []*models.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, NewProductResponse(p))
	}
	return resp
}

func NewBidResponse(b models.Bid) BidResponse {
	return BidResponse{
		Bidder:     b.Bidder().String(),
		Amount:     b.BidPrice().StringFixed(2),
		Delivery:   b.DeliveryMethod().String(),
		SaleCharge: b.SaleCharge().StringFixed(2),
		SaleTax:    b.SaleTax().StringFixed(2),
		PlacedAt:   b.PlacedAt().UTC().Format(time.RFC3339),
	}
}

func NewBidResponses(bids []models.Bid) []BidResponse {
	resp := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, NewBidResponse(b))
	}
	return resp
}

func NewSaleResponse(s models.Sale) SaleResponse {
	product := NewProductResponse(s.Product)
	product.Status = statusSold
	return SaleResponse{
		Product:    product,
		WinningBid: NewBidResponse(s.WinningBid),
		Status:     statusSold,
		SoldAt:     s.SoldAt.UTC().Format(time.RFC3339),
	}
}
