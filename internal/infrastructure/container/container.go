package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/vibenest/vibenest-backend/internal/config"
	httpdelivery "github.com/vibenest/vibenest-backend/internal/delivery/http"
	"github.com/vibenest/vibenest-backend/internal/delivery/http/handler"
	"github.com/vibenest/vibenest-backend/internal/delivery/http/middleware"
	"github.com/vibenest/vibenest-backend/internal/infrastructure/database"
	"github.com/vibenest/vibenest-backend/internal/infrastructure/gemini"
	"github.com/vibenest/vibenest-backend/internal/infrastructure/server"
	"github.com/vibenest/vibenest-backend/internal/repository/cache"
	"github.com/vibenest/vibenest-backend/internal/repository/postgres"
	"github.com/vibenest/vibenest-backend/internal/usecase/auth"
	"github.com/vibenest/vibenest-backend/internal/usecase/feed"
	"github.com/vibenest/vibenest-backend/internal/usecase/generation"
	"github.com/vibenest/vibenest-backend/internal/usecase/listing"
	"github.com/vibenest/vibenest-backend/internal/usecase/message"
	"github.com/vibenest/vibenest-backend/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis; the feed degrades to no seen-cache without it
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		fmt.Printf("Warning: failed to initialize redis, feed seen-cache disabled: %v\n", err)
		redisClient = nil
	}

	// Initialize Gemini client; uploads fall back to manual content without it
	var geminiClient *gemini.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.VisionModel, cfg.Gemini.TextModel)
		if err != nil {
			fmt.Printf("Warning: failed to initialize Gemini client: %v\n", err)
			geminiClient = nil
		}
	} else {
		fmt.Println("Warning: GEMINI_API_KEY not set, content generation disabled")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	feedCache := cache.NewFeedCache(redisClient)

	// Initialize use cases
	var generator *generation.Orchestrator
	if geminiClient != nil {
		generator = generation.NewOrchestrator(geminiClient)
	}

	authUseCase := auth.NewAuthUseCase(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiryMin,
	)

	listingUseCase := listing.NewListingUseCase(
		listingRepo,
		generator,
	)

	feedUseCase := feed.NewFeedUseCase(
		listingRepo,
		swipeRepo,
		feedCache,
	)

	swipeUseCase := swipe.NewSwipeUseCase(
		swipeRepo,
		matchRepo,
		listingRepo,
		feedCache,
	)

	messageUseCase := message.NewMessageUseCase(
		messageRepo,
		matchRepo,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	listingHandler := handler.NewListingHandler(listingUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		listingHandler,
		feedHandler,
		swipeHandler,
		messageHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
