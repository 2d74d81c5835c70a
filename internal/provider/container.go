package provider

import (
	"github.com/soukly/soukly/internal/authz"
	"github.com/soukly/soukly/internal/cache"
	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/logger"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/queue"
	"github.com/soukly/soukly/internal/repository"
	"github.com/soukly/soukly/internal/service"
	"github.com/soukly/soukly/internal/whatsapp"
)

// Container wires repositories and services together for the HTTP and worker
// entry points.
type Container struct {
	Config         *config.Config
	QueueClient    *queue.Client
	WhatsAppClient *whatsapp.Client

	// Repositories
	UserRepo            repository.UserRepository
	SellerRepo          repository.SellerRepository
	ProductRepo         repository.ProductRepository
	CategoryRepo        repository.CategoryRepository
	FavoriteRepo        repository.FavoriteRepository
	PhoneVerifyCodeRepo repository.PhoneVerifyCodeRepository
	SellerAPIKeyRepo    repository.SellerAPIKeyRepository
	CartStore           repository.CartStore

	// Services
	AuthzService     *authz.Service
	CaptchaService   *service.CaptchaService
	UserAuthService  *service.UserAuthService
	PhoneAuthService *service.PhoneAuthService
	OAuthService     *service.OAuthService
	ProductService   *service.ProductService
	CartService      *service.CartService
	OrderService     *service.OrderService
	SellerService    *service.SellerService
	FavoriteService  *service.FavoriteService
	APIKeyService    *service.APIKeyService
}

// NewContainer initializes the dependency container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:         cfg,
		QueueClient:    queueClient,
		WhatsAppClient: whatsapp.NewClient(cfg.WhatsApp.CloudAPI),
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.SellerRepo = repository.NewSellerRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
	c.PhoneVerifyCodeRepo = repository.NewPhoneVerifyCodeRepository(db)
	c.SellerAPIKeyRepo = repository.NewSellerAPIKeyRepository(db)

	// Cart snapshots live in Redis when it is reachable, otherwise in the
	// carts table.
	if cache.Enabled() {
		c.CartStore = repository.NewRedisCartStore()
	} else {
		c.CartStore = repository.NewGormCartStore(db)
	}
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapSellerRole(); err != nil {
		logger.Errorw("provider_bootstrap_seller_role_failed", "error", err)
		panic(err)
	}

	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.PhoneAuthService = service.NewPhoneAuthService(c.Config, c.UserRepo, c.PhoneVerifyCodeRepo, c.QueueClient, c.UserAuthService)
	c.OAuthService = service.NewOAuthService(c.Config, c.UserRepo, c.UserAuthService)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CartService = service.NewCartService(c.CartStore, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.CartService, c.QueueClient)
	c.SellerService = service.NewSellerService(c.SellerRepo, c.ProductRepo, c.SellerAPIKeyRepo, c.AuthzService)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo, c.ProductRepo)
	c.APIKeyService = service.NewAPIKeyService(c.SellerAPIKeyRepo, c.SellerRepo)
}
