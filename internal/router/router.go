package router

import (
	"fmt"
	"strings"

	"github.com/soukly/soukly/internal/cache"
	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/provider"

	publichandlers "github.com/soukly/soukly/internal/http/handlers/public"
	sellerhandlers "github.com/soukly/soukly/internal/http/handlers/seller"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with every route group wired.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	publicHandler := publichandlers.New(c)
	sellerHandler := sellerhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	otpRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:send_otp", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded product images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Public catalog.
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/captcha/config", publicHandler.GetCaptchaConfig)
			public.GET("/captcha/image", publicHandler.GetCaptchaImage)
		}

		// Authentication.
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
			auth.POST("/otp/send", RateLimitMiddleware(redisClient, otpRule, KeyByIPAndJSONField("phone")), publicHandler.SendPhoneOTP)
			auth.POST("/otp/verify", publicHandler.VerifyPhoneOTP)
			auth.GET("/oauth/google", publicHandler.GoogleAuthURL)
			auth.POST("/oauth/google/callback", publicHandler.GoogleCallback)
		}

		// Cart and checkout, shared between visitors and signed-in buyers.
		cart := apiV1.Group("")
		cart.Use(OptionalUserJWTMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			cart.GET("/cart", publicHandler.GetCart)
			cart.POST("/cart/items", publicHandler.AddCartItem)
			cart.PATCH("/cart/items/:product_key", publicHandler.UpdateCartItemQuantity)
			cart.DELETE("/cart/items/:product_key", publicHandler.RemoveCartItem)
			cart.DELETE("/cart", publicHandler.ClearCart)
			cart.POST("/checkout/whatsapp", publicHandler.CheckoutWhatsApp)
		}

		// Buyer account.
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.POST("/auth/logout", publicHandler.UserLogout)
			user.GET("/me", publicHandler.GetMe)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.PUT("/me/password", publicHandler.ChangePassword)
			user.GET("/me/favorites", publicHandler.ListFavorites)
			user.POST("/me/favorites/:product_id", publicHandler.AddFavorite)
			user.DELETE("/me/favorites/:product_id", publicHandler.RemoveFavorite)
			user.POST("/seller/apply", sellerHandler.Become)
		}

		// Seller dashboard, RBAC-guarded.
		seller := apiV1.Group("/seller")
		seller.Use(UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		seller.Use(SellerRBACMiddleware(c.AuthzService))
		{
			seller.GET("/profile", sellerHandler.GetProfile)
			seller.PUT("/profile", sellerHandler.UpdateProfile)
			seller.GET("/dashboard", sellerHandler.Dashboard)
			seller.GET("/products", sellerHandler.ListProducts)
			seller.POST("/products", sellerHandler.CreateProduct)
			seller.PUT("/products/:id", sellerHandler.UpdateProduct)
			seller.DELETE("/products/:id", sellerHandler.DeleteProduct)
			seller.POST("/api-keys", sellerHandler.IssueAPIKey)
			seller.GET("/api-keys", sellerHandler.ListAPIKeys)
			seller.DELETE("/api-keys/:id", sellerHandler.RevokeAPIKey)
		}

		// Machine API, guarded by seller API keys.
		machine := apiV1.Group("/machine")
		machine.Use(APIKeyAuthMiddleware(c.APIKeyService))
		{
			machine.GET("/products", sellerHandler.ListProducts)
			machine.POST("/products", sellerHandler.CreateProduct)
			machine.PUT("/products/:id", sellerHandler.UpdateProduct)
			machine.DELETE("/products/:id", sellerHandler.DeleteProduct)
		}
	}

	return r
}
