//go:generate mockgen -source=auction_handler.go -destination=mock_service.go -package=handler

package handler

import (
	"errors"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SessionHeader carries the token issued by POST /sessions
const SessionHeader = "X-Session-Token"

const sessionKey = "session"

type AuctionServiceInterface interface {
	RegisterClient(name, email, address, password string) (*models.Client, error)
	Login(email, password string) (*models.Session, error)
	Logout(token string) (*models.Session, error)
	Session(token string) (*models.Session, error)
	RegisterProduct(sess *models.Session, initialPrice decimal.Decimal, productType, name string) (*models.Product, error)
	ClientProducts(sess *models.Session) ([]*models.Product, error)
	SearchProducts(productType string) ([]*models.Product, error)
	Product(productID string) (*models.Product, error)
	PlaceBid(sess *models.Session, product *models.Product, amount decimal.Decimal, homeDelivery bool) (models.Bid, error)
	BidsReceived(sess *models.Session, product *models.Product) ([]models.Bid, error)
	SellProduct(sess *models.Session, product *models.Product) (models.Sale, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// RequireSession resolves the session token header and aborts with 401 when it is unknown
func (h *AuctionHandler) RequireSession(c *gin.Context) {
	token := c.GetHeader(SessionHeader)
	sess, err := h.service.Session(token)
	if err != nil {
		helpers.HandleServiceError(c, "RequireSession", err, map[string]any{"path": c.Request.URL.Path})
		c.Abort()
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func currentSession(c *gin.Context) *models.Session {
	return c.MustGet(sessionKey).(*models.Session)
}

// RegisterClientHandler handles POST /clients
func (h *AuctionHandler) RegisterClientHandler(c *gin.Context) {
	var req helpers.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterClientHandler", err)
		return
	}

	client, err := h.service.RegisterClient(req.Name, req.Email, req.Address, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterClientHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewClientResponse(client), "client registered successfully")
	helpers.LogSuccess("RegisterClientHandler", "client registered successfully", map[string]any{"email": client.Email()})
}

// LoginHandler handles POST /sessions
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	sess, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewSessionResponse(sess), "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"email": req.Email})
}

// LogoutHandler handles DELETE /sessions
func (h *AuctionHandler) LogoutHandler(c *gin.Context) {
	sess := currentSession(c)
	if _, err := h.service.Logout(sess.Token); err != nil {
		helpers.HandleServiceError(c, "LogoutHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewClientResponse(sess.Client), sess.Client.Name()+" logged out")
	helpers.LogSuccess("LogoutHandler", "logged out", map[string]any{"email": sess.Client.Email()})
}

// RegisterProductHandler handles POST /products
func (h *AuctionHandler) RegisterProductHandler(c *gin.Context) {
	var req helpers.RegisterProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterProductHandler", err)
		return
	}

	sess := currentSession(c)
	product, err := h.service.RegisterProduct(sess, req.InitialPrice, req.Type, req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterProductHandler", err, map[string]any{"type": req.Type})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProductResponse(product), "product registered successfully")
	helpers.LogSuccess("RegisterProductHandler", "product registered successfully", map[string]any{
		"product_id": product.ID(),
		"type":       product.Type(),
	})
}

// ListClientProductsHandler handles GET /products/mine
func (h *AuctionHandler) ListClientProductsHandler(c *gin.Context) {
	sess := currentSession(c)
	products, err := h.service.ClientProducts(sess)
	h.respondProducts(c, "ListClientProductsHandler", products, err)
}

// SearchProductsHandler handles GET /products?type=
func (h *AuctionHandler) SearchProductsHandler(c *gin.Context) {
	products, err := h.service.SearchProducts(c.Query("type"))
	h.respondProducts(c, "SearchProductsHandler", products, err)
}

// respondProducts reports an empty search as an empty list
func (h *AuctionHandler) respondProducts(c *gin.Context, handlerName string, products []*models.Product, err error) {
	if err != nil && !errors.Is(err, auctionerrors.ErrNoProducts) {
		helpers.HandleServiceError(c, handlerName, err, nil)
		return
	}

	message := "products retrieved successfully"
	if len(products) == 0 {
		message = auctionerrors.ErrNoProducts.Error()
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponses(products), message)
	helpers.LogSuccess(handlerName, "products retrieved", map[string]any{"count": len(products)})
}

// PlaceBidHandler handles POST /products/:product_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	product, err := h.service.Product(productID)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{"product_id": productID})
		return
	}

	sess := currentSession(c)
	bid, err := h.service.PlaceBid(sess, product, req.Amount, req.HomeDelivery)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": productID,
			"amount":     req.Amount.String(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"product_id": productID,
		"bidder":     sess.Client.Email(),
		"amount":     bid.BidPrice().String(),
	})
}

// GetBidsHandler handles GET /products/:product_id/bids
func (h *AuctionHandler) GetBidsHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.Product(productID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsHandler", err, map[string]any{"product_id": productID})
		return
	}

	bids, err := h.service.BidsReceived(currentSession(c), product)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		helpers.HandleServiceError(c, "GetBidsHandler", err, map[string]any{"product_id": productID})
		return
	}

	message := "bids retrieved successfully"
	if len(bids) == 0 {
		message = auctionerrors.ErrNoBids.Error()
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), message)
	helpers.LogSuccess("GetBidsHandler", "bids retrieved", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// SellProductHandler handles POST /products/:product_id/sale
func (h *AuctionHandler) SellProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.Product(productID)
	if err != nil {
		helpers.HandleServiceError(c, "SellProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	sale, err := h.service.SellProduct(currentSession(c), product)
	if err != nil {
		helpers.HandleServiceError(c, "SellProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewSaleResponse(sale), sale.String())
	helpers.LogSuccess("SellProductHandler", "product sold", map[string]any{
		"product_id": productID,
		"sold_at":    sale.SoldAt.Format(time.RFC3339),
	})
}
