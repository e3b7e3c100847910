package auction

import (
	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/session"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, name string) *model.Client {
	t.Helper()
	c, err := model.NewClient(name, name+"@example.com", name+" street", "pw")
	require.NoError(t, err)
	return c
}

func newSession(client *model.Client) *model.Session {
	return &model.Session{Token: "token-" + client.Name(), Client: client}
}

func newProduct(t *testing.T, owner *model.Client, initialPrice int64) *model.Product {
	t.Helper()
	p, err := model.NewProduct(decimal.NewFromInt(initialPrice), owner)
	require.NoError(t, err)
	require.NoError(t, p.SetType("chair"))
	require.NoError(t, p.SetName("Oak chair"))
	return p
}

// Tests RegisterClient
func TestAuctionService_RegisterClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		clientName    string
		email         string
		mockSetup     func(m *repository.MockAuctionHouse)
		expectedError error
	}{
		{
			name:       "valid_client",
			clientName: "Ada",
			email:      "ada@example.com",
			mockSetup: func(m *repository.MockAuctionHouse) {
				m.EXPECT().AddClient(gomock.Any()).Times(1)
			},
		},
		{
			name:          "invalid_email",
			clientName:    "Ada",
			email:         "ada",
			mockSetup:     func(m *repository.MockAuctionHouse) {},
			expectedError: auctionerrors.ErrInvalidEmail,
		},
		{
			name:          "empty_name",
			clientName:    "",
			email:         "ada@example.com",
			mockSetup:     func(m *repository.MockAuctionHouse) {},
			expectedError: auctionerrors.ErrValidation,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := repository.NewMockAuctionHouse(ctrl)
			tc.mockSetup(mockRepo)
			service := NewAuctionService(mockRepo, session.NewMemoryStore())

			client, err := service.RegisterClient(tc.clientName, tc.email, "1 Street", "pw")
			if tc.expectedError != nil {
				require.Nil(t, client)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.email, client.Email())
		})
	}
}

// Tests Login, Session and Logout
func TestAuctionService_LoginLogout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionHouse(ctrl)
	service := NewAuctionService(mockRepo, session.NewMemoryStore())
	ada := newClient(t, "ada")

	mockRepo.EXPECT().FindClient("a@b.com", "wrong").Return(nil, auctionerrors.ErrInvalidCredentials)
	_, err := service.Login("a@b.com", "wrong")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	mockRepo.EXPECT().FindClient("ada@example.com", "pw").Return(ada, nil)
	sess, err := service.Login("ada@example.com", "pw")
	require.NoError(t, err)
	require.Same(t, ada, sess.Client)

	got, err := service.Session(sess.Token)
	require.NoError(t, err)
	require.Same(t, sess, got)

	closed, err := service.Logout(sess.Token)
	require.NoError(t, err)
	require.Same(t, sess, closed)

	_, err = service.Session(sess.Token)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthorized)
	_, err = service.Logout(sess.Token)
	require.ErrorIs(t, err, auctionerrors.ErrUnauthorized)
}

// Tests RegisterProduct
func TestAuctionService_RegisterProduct(t *testing.T) {
	t.Parallel()

	owner := newClient(t, "ada")

	tests := []struct {
		name          string
		price         string
		productType   string
		productName   string
		mockSetup     func(m *repository.MockAuctionHouse)
		expectedError error
	}{
		{
			name:        "valid_product",
			price:       "100",
			productType: "chair",
			productName: "Oak chair",
			mockSetup: func(m *repository.MockAuctionHouse) {
				m.EXPECT().AddProduct(gomock.Any()).Times(1)
			},
		},
		{
			name:          "negative_price",
			price:         "-1",
			productType:   "chair",
			productName:   "Oak chair",
			mockSetup:     func(m *repository.MockAuctionHouse) {},
			expectedError: auctionerrors.ErrInvalidArgument,
		},
		{
			name:          "empty_type",
			price:         "1",
			productType:   "",
			productName:   "Oak chair",
			mockSetup:     func(m *repository.MockAuctionHouse) {},
			expectedError: auctionerrors.ErrEmptyProductType,
		},
		{
			name:          "empty_name",
			price:         "1",
			productType:   "chair",
			productName:   "",
			mockSetup:     func(m *repository.MockAuctionHouse) {},
			expectedError: auctionerrors.ErrEmptyProductName,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := repository.NewMockAuctionHouse(ctrl)
			tc.mockSetup(mockRepo)
			service := NewAuctionService(mockRepo, session.NewMemoryStore())

			product, err := service.RegisterProduct(newSession(owner), decimal.RequireFromString(tc.price), tc.productType, tc.productName)
			if tc.expectedError != nil {
				require.Nil(t, product)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Same(t, owner, product.Client())
			require.Equal(t, tc.productType, product.Type())
			require.Equal(t, tc.productName, product.Name())
		})
	}
}

// Tests ClientProducts and SearchProducts
func TestAuctionService_Queries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionHouse(ctrl)
	service := NewAuctionService(mockRepo, session.NewMemoryStore())
	owner := newClient(t, "ada")
	product := newProduct(t, owner, 10)

	mockRepo.EXPECT().ProductsByClient(owner).Return([]*model.Product{product}, nil)
	got, err := service.ClientProducts(newSession(owner))
	require.NoError(t, err)
	require.Equal(t, []*model.Product{product}, got)

	mockRepo.EXPECT().ProductsByType("chair").Return(nil, auctionerrors.ErrNoProducts)
	_, err = service.SearchProducts("chair")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	mockRepo.EXPECT().FindProduct("missing").Return(nil, auctionerrors.ErrProductNotFound)
	_, err = service.Product("missing")
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

// Tests PlaceBid
func TestAuctionService_PlaceBid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewAuctionService(repository.NewMockAuctionHouse(ctrl), session.NewMemoryStore())
	owner := newClient(t, "ada")
	bidder := newClient(t, "bob")
	product := newProduct(t, owner, 100)

	_, err := service.PlaceBid(newSession(bidder), product, decimal.NewFromInt(100), false)
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	bid, err := service.PlaceBid(newSession(bidder), product, decimal.NewFromInt(150), true)
	require.NoError(t, err)
	require.Same(t, bidder, bid.Bidder())
	require.Equal(t, model.HomeDelivery, bid.DeliveryMethod())
	require.True(t, product.Price().Equal(decimal.NewFromInt(150)))
}

// Tests BidsReceived
func TestAuctionService_BidsReceived(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewAuctionService(repository.NewMockAuctionHouse(ctrl), session.NewMemoryStore())
	owner := newClient(t, "ada")
	bidder := newClient(t, "bob")
	product := newProduct(t, owner, 1)

	_, err := service.BidsReceived(newSession(owner), product)
	require.ErrorIs(t, err, auctionerrors.ErrEmptyState)

	_, err = service.BidsReceived(newSession(bidder), product)
	require.ErrorIs(t, err, auctionerrors.ErrForbidden)

	_, err = product.PlaceBid(decimal.NewFromInt(2), bidder, false)
	require.NoError(t, err)
	_, err = product.PlaceBid(decimal.NewFromInt(3), bidder, true)
	require.NoError(t, err)

	bids, err := service.BidsReceived(newSession(owner), product)
	require.NoError(t, err)
	require.Len(t, bids, 2)
}

// Tests SellProduct
func TestAuctionService_SellProduct(t *testing.T) {
	t.Parallel()

	owner := newClient(t, "ada")
	bidder := newClient(t, "bob")

	tests := []struct {
		name          string
		seller        *model.Client
		withBid       bool
		mockSetup     func(m *repository.MockAuctionHouse, p *model.Product)
		expectedError error
	}{
		{
			name:    "sold",
			seller:  owner,
			withBid: true,
			mockSetup: func(m *repository.MockAuctionHouse, p *model.Product) {
				m.EXPECT().RemoveProduct(p).Return(true, nil)
			},
		},
		{
			name:    "no_bids",
			seller:  owner,
			withBid: false,
			mockSetup: func(m *repository.MockAuctionHouse, p *model.Product) {
				m.EXPECT().RemoveProduct(p).Return(false, auctionerrors.ErrNotSellable)
			},
			expectedError: auctionerrors.ErrIllegalState,
		},
		{
			name:    "already_sold",
			seller:  owner,
			withBid: true,
			mockSetup: func(m *repository.MockAuctionHouse, p *model.Product) {
				m.EXPECT().RemoveProduct(p).Return(false, nil)
			},
			expectedError: auctionerrors.ErrProductSold,
		},
		{
			name:          "not_owner",
			seller:        bidder,
			withBid:       true,
			mockSetup:     func(m *repository.MockAuctionHouse, p *model.Product) {},
			expectedError: auctionerrors.ErrNotOwner,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := repository.NewMockAuctionHouse(ctrl)
			service := NewAuctionService(mockRepo, session.NewMemoryStore())

			product := newProduct(t, owner, 100)
			if tc.withBid {
				_, err := product.PlaceBid(decimal.NewFromInt(150), bidder, false)
				require.NoError(t, err)
			}
			tc.mockSetup(mockRepo, product)

			sale, err := service.SellProduct(newSession(tc.seller), product)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.Same(t, product, sale.Product)
			require.Same(t, bidder, sale.WinningBid.Bidder())
			require.True(t, sale.WinningBid.BidPrice().Equal(decimal.NewFromInt(150)))
			require.False(t, sale.SoldAt.IsZero())
		})
	}
}

// End-to-end over the in-memory registry
func TestAuctionService_SaleScenario(t *testing.T) {
	t.Parallel()

	service := NewAuctionService(repository.NewMemoryRepo(), session.NewMemoryStore())

	_, err := service.RegisterClient("Alice", "alice@example.com", "1 Street", "a-pw")
	require.NoError(t, err)
	_, err = service.RegisterClient("Bob", "bob@example.com", "2 Street", "b-pw")
	require.NoError(t, err)

	alice, err := service.Login("alice@example.com", "a-pw")
	require.NoError(t, err)
	bob, err := service.Login("bob@example.com", "b-pw")
	require.NoError(t, err)

	product, err := service.RegisterProduct(alice, decimal.NewFromInt(100), "chair", "Oak chair")
	require.NoError(t, err)

	found, err := service.SearchProducts("chair")
	require.NoError(t, err)
	require.Equal(t, []*model.Product{product}, found)

	_, err = service.SellProduct(alice, product)
	require.ErrorIs(t, err, auctionerrors.ErrIllegalState)

	_, err = service.PlaceBid(bob, product, decimal.NewFromInt(150), false)
	require.NoError(t, err)

	sale, err := service.SellProduct(alice, product)
	require.NoError(t, err)
	require.Equal(t, "chair, Oak chair: $150.00 sold to Bob bob@example.com for $150.00", sale.String())

	_, err = service.ClientProducts(alice)
	require.ErrorIs(t, err, auctionerrors.ErrNoProducts)
	_, err = service.SellProduct(alice, product)
	require.ErrorIs(t, err, auctionerrors.ErrProductSold)

	_, err = service.PlaceBid(bob, product, decimal.NewFromInt(500), true)
	require.ErrorIs(t, err, auctionerrors.ErrProductSold)
	require.ErrorIs(t, err, auctionerrors.ErrIllegalState)
	require.Len(t, product.Bids(), 1)
	require.Equal(t, model.ProductStatusSold, product.Status())
}

// A bid racing a sale either makes it into the sale or is rejected
func TestAuctionService_BidRacingSale(t *testing.T) {
	t.Parallel()

	service := NewAuctionService(repository.NewMemoryRepo(), session.NewMemoryStore())
	seller := newSession(newClient(t, "alice"))
	bidder := newSession(newClient(t, "bob"))

	for i := 0; i < 200; i++ {
		product, err := service.RegisterProduct(seller, decimal.NewFromInt(10), "chair", "Oak chair")
		require.NoError(t, err)
		_, err = service.PlaceBid(bidder, product, decimal.NewFromInt(11), false)
		require.NoError(t, err)

		var wg sync.WaitGroup
		var bidErr error
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, bidErr = service.PlaceBid(bidder, product, decimal.NewFromInt(12), true)
		}()

		sale, err := service.SellProduct(seller, product)
		wg.Wait()
		require.NoError(t, err)

		latest, err := product.LatestBid()
		require.NoError(t, err)
		require.True(t, sale.WinningBid.BidPrice().Equal(latest.BidPrice()), "winning bid must be the last bid in the log")
		if bidErr != nil {
			require.ErrorIs(t, bidErr, auctionerrors.ErrProductSold)
			require.Len(t, product.Bids(), 1)
		}
	}
}
