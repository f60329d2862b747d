package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vibenest/vibenest-backend/internal/delivery/http/handler"
	"github.com/vibenest/vibenest-backend/internal/delivery/http/middleware"
	"github.com/vibenest/vibenest-backend/internal/usecase/matching"
)

type Router struct {
	authHandler    *handler.AuthHandler
	listingHandler *handler.ListingHandler
	feedHandler    *handler.FeedHandler
	swipeHandler   *handler.SwipeHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	listingHandler *handler.ListingHandler,
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		listingHandler: listingHandler,
		feedHandler:    feedHandler,
		swipeHandler:   swipeHandler,
		messageHandler: messageHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	registerValidations()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Listing routes
			listings := protected.Group("/listings")
			{
				listings.POST("", r.listingHandler.Create)
				listings.GET("/mine", r.listingHandler.GetMine)
				listings.GET("/:listing_id", r.listingHandler.GetByID)
				listings.PUT("/:listing_id", r.listingHandler.Update)
				listings.POST("/:listing_id/regenerate", r.listingHandler.Regenerate)
				listings.DELETE("/:listing_id", r.listingHandler.Delete)
			}

			// Feed routes
			feed := protected.Group("/feed")
			{
				feed.POST("", r.feedHandler.GetFeed)
				feed.POST("/reset-dislikes", r.feedHandler.ResetDislikes)
			}

			// Swipe and match routes
			swipe := protected.Group("/swipe")
			{
				swipe.POST("", r.swipeHandler.CreateSwipe)
				swipe.GET("/likes-received", r.swipeHandler.GetLikesReceived)
			}

			matches := protected.Group("/matches")
			{
				matches.GET("", r.swipeHandler.GetMyMatches)
				matches.POST("/:match_id/messages", r.messageHandler.Send)
				matches.GET("/:match_id/messages", r.messageHandler.GetConversation)
				matches.GET("/:match_id/messages/unread", r.messageHandler.UnreadCount)
			}
		}

		// Vibes known to the scorer (public, used by the questionnaire UI)
		v1.GET("/vibes", func(c *gin.Context) {
			c.JSON(200, gin.H{"vibes": matching.KnownVibes()})
		})
	}

	return router
}

// registerValidations adds the custom "vibe" binding tag so listing payloads
// can only carry vibes the scorer knows how to rank.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vibe", func(fl validator.FieldLevel) bool {
			return matching.IsKnownVibe(fl.Field().String())
		})
	}
}
