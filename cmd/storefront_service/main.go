package main

import (
	"github.com/gin-gonic/gin"

	cartAPI "github.com/freshgrocer/storefront-service/internal/cart/api"
	cartRepo "github.com/freshgrocer/storefront-service/internal/cart/repository"
	cartService "github.com/freshgrocer/storefront-service/internal/cart/service"
	catalogAPI "github.com/freshgrocer/storefront-service/internal/catalog/api"
	catalogRepo "github.com/freshgrocer/storefront-service/internal/catalog/repository"
	catalogService "github.com/freshgrocer/storefront-service/internal/catalog/service"
	orderAPI "github.com/freshgrocer/storefront-service/internal/order/api"
	orderRepo "github.com/freshgrocer/storefront-service/internal/order/repository"
	orderService "github.com/freshgrocer/storefront-service/internal/order/service"
	"github.com/freshgrocer/storefront-service/internal/platform/config"
	"github.com/freshgrocer/storefront-service/internal/platform/database"
	"github.com/freshgrocer/storefront-service/internal/platform/logger"
	"github.com/freshgrocer/storefront-service/internal/platform/notifier"
	userAPI "github.com/freshgrocer/storefront-service/internal/user/api"
	userRepo "github.com/freshgrocer/storefront-service/internal/user/repository"
	userService "github.com/freshgrocer/storefront-service/internal/user/service"
	wishlistAPI "github.com/freshgrocer/storefront-service/internal/wishlist/api"
	wishlistRepo "github.com/freshgrocer/storefront-service/internal/wishlist/repository"
	wishlistService "github.com/freshgrocer/storefront-service/internal/wishlist/service"
)

func main() {
	// Load Config
	dbCfg := config.LoadStorefrontDBConfig()
	serverCfg := config.LoadServerConfig("8080")
	checkoutCfg := config.LoadCheckoutConfig()
	cartCfg := config.LoadCartConfig()
	authCfg := config.LoadAuthConfig()

	logger.Info("Starting Storefront Service...")

	// Setup Repositories. Catalog, orders and users go to postgres when a
	// DSN is configured; carts and wishlists are session-scoped and stay
	// in memory either way.
	var (
		productRepository catalogRepo.ProductRepository
		orderRepository   orderRepo.OrderRepository
		userRepository    userRepo.UserRepository
	)
	if dbCfg.DSN != "" {
		db, err := database.Connect(dbCfg.DSN)
		if err != nil {
			logger.Error("Failed to connect to database for Storefront Service", err)
			return
		}
		defer db.Close()
		productRepository = catalogRepo.NewPostgresProductRepository(db)
		orderRepository = orderRepo.NewPostgresOrderRepository(db)
		userRepository = userRepo.NewPostgresUserRepository(db)
	} else {
		logger.Info("STOREFRONT_DB_DSN not set, serving the in-memory seed catalog")
		productRepository = catalogRepo.NewMemoryProductRepository(catalogRepo.SeedProducts())
		orderRepository = orderRepo.NewMemoryOrderRepository()
		userRepository = userRepo.NewMemoryUserRepository()
	}

	// Setup Services
	notify := notifier.NewLogNotifier()
	catalogSvc := catalogService.NewCatalogService(productRepository, notify)
	cartSvc := cartService.NewCartService(cartRepo.NewMemoryCartRepository(), productRepository, notify, checkoutCfg.ShippingFee, cartCfg.IdleTTL)
	wishlistSvc := wishlistService.NewWishlistService(wishlistRepo.NewMemoryWishlistRepository(), productRepository, notify)
	orderSvc := orderService.NewOrderService(orderRepository, cartSvc, notify, checkoutCfg.ShippingFee)
	userSvc := userService.NewUserService(userRepository, authCfg.JWTSecret)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiV1 := router.Group("/api/v1")
	apiV1.Use(userAPI.OptionalAuth(authCfg.JWTSecret))

	catalogAPI.NewProductHandler(catalogSvc, userAPI.AuthRequired(authCfg.JWTSecret)).RegisterRoutes(apiV1)
	cartAPI.NewCartHandler(cartSvc).RegisterRoutes(apiV1)
	wishlistAPI.NewWishlistHandler(wishlistSvc).RegisterRoutes(apiV1)
	orderAPI.NewOrderHandler(orderSvc).RegisterRoutes(apiV1)
	userAPI.NewUserHandler(userSvc).RegisterRoutes(apiV1)

	logger.Info("Storefront Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Storefront Service server", err)
	}
}
