package server

import (
	auction "auction-house/internal/auctionService"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionService)

	router.POST("/clients", auctionHandler.RegisterClientHandler)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", auctionHandler.LoginHandler)
		sessions.DELETE("", auctionHandler.RequireSession, auctionHandler.LogoutHandler)
	}

	products := router.Group("/products")
	{
		products.GET("", auctionHandler.SearchProductsHandler)
	}

	owned := router.Group("/products", auctionHandler.RequireSession)
	{
		owned.POST("", auctionHandler.RegisterProductHandler)
		owned.GET("/mine", auctionHandler.ListClientProductsHandler)
		owned.POST("/:product_id/bids", auctionHandler.PlaceBidHandler)
		owned.GET("/:product_id/bids", auctionHandler.GetBidsHandler)
		owned.POST("/:product_id/sale", auctionHandler.SellProductHandler)
	}

	return router
}
