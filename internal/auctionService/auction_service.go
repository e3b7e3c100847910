package auction

import (
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/session"
	"auction-house/utils"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AuctionService implements the auction house commands on top of the registry
type AuctionService struct {
	repo     repository.AuctionHouse
	sessions *session.MemoryStore
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionHouse, sessions *session.MemoryStore) *AuctionService {
	return &AuctionService{
		repo:     repo,
		sessions: sessions,
	}
}

// RegisterClient validates and signs up a new client
func (s *AuctionService) RegisterClient(name, email, address, password string) (*models.Client, error) {
	client, err := models.NewClient(name, email, address, password)
	if err != nil {
		return nil, fmt.Errorf("service: invalid client details: %w", err)
	}

	s.repo.AddClient(client)
	utils.Info("client registered", map[string]any{"email": email})
	return client, nil
}

// Login opens a session for the client matching the credentials
func (s *AuctionService) Login(email, password string) (*models.Session, error) {
	client, err := s.repo.FindClient(email, password)
	if err != nil {
		utils.Warn("login failed", map[string]any{"email": email})
		return nil, fmt.Errorf("service: failed to log in %s: %w", email, err)
	}

	sess := s.sessions.Open(client)
	utils.Info("client logged in", map[string]any{"email": email})
	return sess, nil
}

// Logout closes the session identified by token
func (s *AuctionService) Logout(token string) (*models.Session, error) {
	sess, err := s.sessions.Close(token)
	if err != nil {
		return nil, fmt.Errorf("service: failed to log out: %w", err)
	}

	utils.Info("client logged out", map[string]any{"email": sess.Client.Email()})
	return sess, nil
}

// Session resolves an open session by token
func (s *AuctionService) Session(token string) (*models.Session, error) {
	sess, err := s.sessions.Get(token)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return sess, nil
}

// RegisterProduct advertises a new product on behalf of the session's client
func (s *AuctionService) RegisterProduct(sess *models.Session, initialPrice decimal.Decimal, productType, name string) (*models.Product, error) {
	product, err := models.NewProduct(initialPrice, sess.Client)
	if err != nil {
		return nil, fmt.Errorf("service: invalid product price: %w", err)
	}
	if err := product.SetType(productType); err != nil {
		return nil, fmt.Errorf("service: invalid product details: %w", err)
	}
	if err := product.SetName(name); err != nil {
		return nil, fmt.Errorf("service: invalid product details: %w", err)
	}

	s.repo.AddProduct(product)
	utils.Info("product registered", map[string]any{
		"product_id":    product.ID(),
		"type":          productType,
		"initial_price": initialPrice.String(),
		"client":        sess.Client.Email(),
	})
	return product, nil
}

// ClientProducts returns the live products advertised by the session's client
func (s *AuctionService) ClientProducts(sess *models.Session) ([]*models.Product, error) {
	products, err := s.repo.ProductsByClient(sess.Client)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list products of %s: %w", sess.Client.Email(), err)
	}
	utils.Debug("client products listed", map[string]any{"client": sess.Client.Email(), "count": len(products)})
	return products, nil
}

// SearchProducts returns the live products of a given type
func (s *AuctionService) SearchProducts(productType string) ([]*models.Product, error) {
	products, err := s.repo.ProductsByType(productType)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search products: %w", err)
	}
	utils.Debug("products searched", map[string]any{"type": productType, "count": len(products)})
	return products, nil
}

// Product returns a live product by its handle
func (s *AuctionService) Product(productID string) (*models.Product, error) {
	product, err := s.repo.FindProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return product, nil
}

// PlaceBid bids on product for the session's client
func (s *AuctionService) PlaceBid(sess *models.Session, product *models.Product, amount decimal.Decimal, homeDelivery bool) (models.Bid, error) {
	bid, err := product.PlaceBid(amount, sess.Client, homeDelivery)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: bid of %s on product %s rejected: %w", amount, product.ID(), err)
	}

	utils.Info("bid placed", map[string]any{
		"product_id": product.ID(),
		"bidder":     sess.Client.Email(),
		"amount":     amount.String(),
		"delivery":   bid.DeliveryMethod().String(),
	})
	return bid, nil
}

// BidsReceived returns the bid log of a product owned by the session's client
func (s *AuctionService) BidsReceived(sess *models.Session, product *models.Product) ([]models.Bid, error) {
	if product.Client() != sess.Client {
		return nil, fmt.Errorf("service: bids of product %s: %w", product.ID(), auctionerrors.ErrNotOwner)
	}

	bids := product.Bids()
	if len(bids) == 0 {
		return nil, fmt.Errorf("service: bids of product %s: %w", product.ID(), auctionerrors.ErrNoBids)
	}
	utils.Debug("bids listed", map[string]any{"product_id": product.ID(), "count": len(bids)})
	return bids, nil
}

// SellProduct sells a product owned by the session's client to its highest bidder
func (s *AuctionService) SellProduct(sess *models.Session, product *models.Product) (models.Sale, error) {
	if product.Client() != sess.Client {
		return models.Sale{}, fmt.Errorf("service: sell product %s: %w", product.ID(), auctionerrors.ErrNotOwner)
	}

	removed, err := s.repo.RemoveProduct(product)
	if err != nil {
		return models.Sale{}, fmt.Errorf("service: failed to sell product %s: %w", product.ID(), err)
	}
	if !removed {
		return models.Sale{}, fmt.Errorf("service: sell product %s: %w", product.ID(), auctionerrors.ErrProductSold)
	}

	winning, err := product.LatestBid()
	if err != nil {
		return models.Sale{}, fmt.Errorf("service: sold product %s: %w", product.ID(), err)
	}

	sale := models.Sale{
		Product:    product,
		WinningBid: winning,
		SoldAt:     time.Now().UTC(),
	}
	utils.Info("product sold", map[string]any{
		"product_id": product.ID(),
		"buyer":      winning.Bidder().Email(),
		"price":      winning.BidPrice().String(),
	})
	return sale, nil
}
