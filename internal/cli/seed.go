package cli

import (
	"fmt"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/utils"
)

// prepopulate registers the configured clients and advertises their products
func prepopulate(svc *auction.AuctionService, seeds []config.SeedClient) error {
	products := 0
	for _, sc := range seeds {
		if _, err := svc.RegisterClient(sc.Name, sc.Email, sc.Address, sc.Password); err != nil {
			return fmt.Errorf("seed client %q: %w", sc.Email, err)
		}
		if len(sc.Products) == 0 {
			continue
		}

		sess, err := svc.Login(sc.Email, sc.Password)
		if err != nil {
			return fmt.Errorf("seed client %q: %w", sc.Email, err)
		}
		for _, sp := range sc.Products {
			price, err := sp.Price()
			if err != nil {
				return err
			}
			if _, err := svc.RegisterProduct(sess, price, sp.Type, sp.Name); err != nil {
				return fmt.Errorf("seed product %q of %q: %w", sp.Name, sc.Email, err)
			}
			products++
		}
		if _, err := svc.Logout(sess.Token); err != nil {
			return err
		}
	}

	utils.Info("seed data loaded", map[string]any{"clients": len(seeds), "products": products})
	return nil
}
