package console

import (
	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// AuctionService is the set of auction house commands the shell drives
type AuctionService interface {
	RegisterClient(name, email, address, password string) (*models.Client, error)
	Login(email, password string) (*models.Session, error)
	Logout(token string) (*models.Session, error)
	RegisterProduct(sess *models.Session, initialPrice decimal.Decimal, productType, name string) (*models.Product, error)
	ClientProducts(sess *models.Session) ([]*models.Product, error)
	SearchProducts(productType string) ([]*models.Product, error)
	PlaceBid(sess *models.Session, product *models.Product, amount decimal.Decimal, homeDelivery bool) (models.Bid, error)
	BidsReceived(sess *models.Session, product *models.Product) ([]models.Bid, error)
	SellProduct(sess *models.Session, product *models.Product) (models.Sale, error)
}

const menuPrompt = "Please select one of the following"

var startupOptions = []any{
	"Register as a new client",
	"Log in as an existing client",
	"Exit",
}

const (
	optAddClient = iota
	optLogin
	optExit
)

var loggedInOptions = []any{
	"Register item for sale",
	"List my items",
	"Search items",
	"Place a bid on an item",
	"List bids received for my items",
	"Sell one of my items to the highest bidder",
	"Log out",
}

const (
	optAddProduct = iota
	optListItems
	optSearchItems
	optPlaceBid
	optListBids
	optSellItem
	optLogOut
)

// Shell runs the auction house menus against a service
type Shell struct {
	ui      *UI
	service AuctionService
}

// NewShell creates a Shell
func NewShell(service AuctionService, ui *UI) *Shell {
	return &Shell{ui: ui, service: service}
}

// Run shows the startup menu until the operator exits or input ends
func (s *Shell) Run() error {
	s.ui.Message("Welcome to Auction House!")

	err := s.startupMenu()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) startupMenu() error {
	for {
		choice, err := s.ui.GetOption(menuPrompt, startupOptions...)
		if err != nil {
			return err
		}

		switch choice {
		case optAddClient:
			err = s.addClient()
		case optLogin:
			err = s.login()
		case optExit:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) loggedInMenu(sess *models.Session) error {
	for {
		choice, err := s.ui.GetOption(menuPrompt, loggedInOptions...)
		if err != nil {
			return err
		}

		switch choice {
		case optAddProduct:
			err = s.addProduct(sess)
		case optListItems:
			_, err = s.listClientProducts(sess, false)
		case optSearchItems:
			_, err = s.searchProducts(false)
		case optPlaceBid:
			err = s.placeBid(sess)
		case optListBids:
			err = s.listBids(sess)
		case optSellItem:
			err = s.sellProduct(sess)
		case optLogOut:
			return s.logout(sess)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addClient() error {
	name, err := s.ui.GetInput("Full name")
	if err != nil {
		return err
	}
	email, err := s.ui.GetInput("Email")
	if err != nil {
		return err
	}
	password, err := s.ui.GetPassword("Password")
	if err != nil {
		return err
	}
	address, err := s.ui.GetInput("Address")
	if err != nil {
		return err
	}

	client, err := s.service.RegisterClient(name, email, address, password)
	if err != nil {
		s.ui.Error("Registration unsuccessful. " + auctionerrors.Message(err))
		return nil
	}
	s.ui.Message(client.Name() + " registered successfully.")
	return nil
}

func (s *Shell) login() error {
	email, err := s.ui.GetInput("Email")
	if err != nil {
		return err
	}
	password, err := s.ui.GetPassword("Password")
	if err != nil {
		return err
	}

	sess, err := s.service.Login(email, password)
	if err != nil {
		s.ui.Error(auctionerrors.Message(err))
		return nil
	}
	s.ui.Message("Welcome " + sess.Client.String())
	return s.loggedInMenu(sess)
}

func (s *Shell) logout(sess *models.Session) error {
	if _, err := s.service.Logout(sess.Token); err != nil {
		s.ui.Error(auctionerrors.Message(err))
		return nil
	}
	s.ui.Message(sess.Client.Name() + " logged out")
	return nil
}

func (s *Shell) addProduct(sess *models.Session) error {
	price, err := s.ui.GetDecimal("Initial bid")
	if err != nil {
		return err
	}
	productType, err := s.ui.GetInput("Type")
	if err != nil {
		return err
	}
	name, err := s.ui.GetInput("Description")
	if err != nil {
		return err
	}

	product, err := s.service.RegisterProduct(sess, price, productType, name)
	if err != nil {
		s.ui.Error("Product not registered. " + auctionerrors.Message(err))
		return nil
	}
	s.ui.Message(product.String() + " registered successfully.")
	return nil
}

// listClientProducts lists the session client's products. With makeSelection it
// returns the one the operator picks; a nil product means nothing was listed.
func (s *Shell) listClientProducts(sess *models.Session, makeSelection bool) (*models.Product, error) {
	products, err := s.service.ClientProducts(sess)
	if err != nil {
		s.ui.Message(auctionerrors.Message(err))
		return nil, nil
	}
	if !makeSelection {
		s.ui.DisplayOptions("Items owned by "+sess.Client.Name(), asOptions(products)...)
		return nil, nil
	}
	return s.choose(products)
}

// searchProducts asks for a type and lists the matching products
func (s *Shell) searchProducts(makeSelection bool) (*models.Product, error) {
	productType, err := s.ui.GetInput("Type")
	if err != nil {
		return nil, err
	}

	products, err := s.service.SearchProducts(productType)
	if err != nil {
		s.ui.Message(auctionerrors.Message(err))
		return nil, nil
	}
	if !makeSelection {
		s.ui.DisplayOptions("Items found", asOptions(products)...)
		return nil, nil
	}
	return s.choose(products)
}

func (s *Shell) choose(products []*models.Product) (*models.Product, error) {
	i, err := s.ui.GetOption(menuPrompt, asOptions(products)...)
	if err != nil {
		return nil, err
	}
	return products[i], nil
}

func (s *Shell) placeBid(sess *models.Session) error {
	product, err := s.searchProducts(true)
	if err != nil || product == nil {
		return err
	}

	amount, err := s.ui.GetDecimal(fmt.Sprintf("Enter bid ($). Current highest bid: %s", models.FormatMoney(product.Price())))
	if err != nil {
		return err
	}
	homeDelivery, err := s.ui.GetBool("Home delivery")
	if err != nil {
		return err
	}

	bid, err := s.service.PlaceBid(sess, product, amount, homeDelivery)
	if err != nil {
		s.ui.Error("Bid unsuccessful. " + auctionerrors.Message(err))
		return nil
	}
	s.ui.Message(bid)
	return nil
}

func (s *Shell) listBids(sess *models.Session) error {
	product, err := s.listClientProducts(sess, true)
	if err != nil || product == nil {
		return err
	}

	bids, err := s.service.BidsReceived(sess, product)
	if err != nil {
		s.ui.Message(auctionerrors.Message(err))
		return nil
	}
	s.ui.DisplayOptions(fmt.Sprintf("Bids received for %s:", product), asOptions(bids)...)
	return nil
}

func (s *Shell) sellProduct(sess *models.Session) error {
	product, err := s.listClientProducts(sess, true)
	if err != nil || product == nil {
		return err
	}

	sale, err := s.service.SellProduct(sess, product)
	if err != nil {
		s.ui.Message("Cannot sell item. " + auctionerrors.Message(err))
		return nil
	}
	s.ui.Message(sale)
	return nil
}
