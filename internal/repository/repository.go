//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

package repository

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"fmt"
	"sync"
)

// AuctionHouse defines the registry of clients and live products
type AuctionHouse interface {
	AddClient(client *model.Client)
	AddProduct(product *model.Product)
	FindClient(email, password string) (*model.Client, error)
	FindProduct(productID string) (*model.Product, error)
	ProductsByClient(client *model.Client) ([]*model.Product, error)
	ProductsByType(productType string) ([]*model.Product, error)
	RemoveProduct(product *model.Product) (bool, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionHouse
type MemoryRepo struct {
	mu       sync.RWMutex
	clients  []*model.Client
	products []*model.Product // live products, in advertising order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// AddClient signs up a client. Duplicate credentials are allowed; lookups return the first match.
func (r *MemoryRepo) AddClient(client *model.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, client)
}

// AddProduct advertises a product
func (r *MemoryRepo) AddProduct(product *model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append(r.products, product)
}

// FindClient returns the first client registered with exactly these credentials
func (r *MemoryRepo) FindClient(email, password string) (*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.clients {
		if c.Matches(email, password) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("find client %s: %w", email, auctionerrors.ErrInvalidCredentials)
}

// FindProduct returns the live product with the given handle
func (r *MemoryRepo) FindProduct(productID string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID() == productID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("find product %s: %w", productID, auctionerrors.ErrProductNotFound)
}

// ProductsByClient returns the live products advertised by client.
// An empty result is reported as ErrNoProducts.
func (r *MemoryRepo) ProductsByClient(client *model.Client) ([]*model.Product, error) {
	found, err := r.filter(func(p *model.Product) bool { return p.Client() == client })
	if err != nil {
		return nil, fmt.Errorf("products of client %s: %w", client, err)
	}
	return found, nil
}

// ProductsByType returns the live products of exactly this type.
// An empty result is reported as ErrNoProducts.
func (r *MemoryRepo) ProductsByType(productType string) ([]*model.Product, error) {
	found, err := r.filter(func(p *model.Product) bool { return p.Type() == productType })
	if err != nil {
		return nil, fmt.Errorf("products of type %q: %w", productType, err)
	}
	return found, nil
}

func (r *MemoryRepo) filter(match func(*model.Product) bool) ([]*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found []*model.Product
	for _, p := range r.products {
		if match(p) {
			found = append(found, p)
		}
	}
	if len(found) == 0 {
		return nil, auctionerrors.ErrNoProducts
	}
	return found, nil
}

// RemoveProduct takes a product off sale and marks it sold. It fails with
// ErrNotSellable if the product has no bids, and returns false if the product
// was no longer listed.
func (r *MemoryRepo) RemoveProduct(product *model.Product) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !product.HasBids() {
		return false, fmt.Errorf("remove product %s: %w", product.ID(), auctionerrors.ErrNotSellable)
	}

	for i, p := range r.products {
		if p == product {
			// registry then product lock order; bids stop before the product leaves the list
			product.MarkSold()
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
