package di

import (
	"github.com/newshelton/storefront-api/internal/handler"
	"github.com/newshelton/storefront-api/internal/repository"
	"github.com/newshelton/storefront-api/internal/service"
	"github.com/newshelton/storefront-api/internal/session"
	"github.com/newshelton/storefront-api/pkg/config"
	"github.com/newshelton/storefront-api/pkg/database"
	"github.com/newshelton/storefront-api/pkg/logger"
	"github.com/newshelton/storefront-api/pkg/redis"
)

// Container holds all dependencies for the storefront API
type Container struct {
	// Infrastructure
	DB       *database.PostgresDB
	Redis    *redis.Client
	Sessions *session.Manager

	// Repositories
	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	CatalogRepo repository.CatalogRepository

	// Services
	AuthService    service.AuthService
	OrderService   service.OrderService
	CatalogService service.CatalogService

	// Handlers
	AuthHandler    *handler.AuthHandler
	OrderHandler   *handler.OrderHandler
	CatalogHandler *handler.CatalogHandler
	HealthHandler  *handler.HealthHandler
}

// NewContainer wires repositories, services and handlers. redisClient
// may be nil when the session backend is "memory".
func NewContainer(cfg *config.Config, db *database.PostgresDB, redisClient *redis.Client, log *logger.Logger) *Container {
	c := &Container{
		DB:    db,
		Redis: redisClient,
	}

	var store session.Store
	if cfg.Session.Backend == "redis" && redisClient != nil {
		store = session.NewRedisStore(redisClient)
	} else {
		store = session.NewMemoryStore()
	}
	c.Sessions = session.NewManager(store, cfg.Session.Secret, cfg.Session.TTL)

	pool := db.Pool()
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.OrderRepo = repository.NewPostgresOrderRepository(pool)
	c.CatalogRepo = repository.NewPostgresCatalogRepository(pool)

	c.AuthService = service.NewAuthService(c.UserRepo, &service.AuthServiceConfig{})
	c.OrderService = service.NewOrderService(c.OrderRepo, &service.OrderServiceConfig{
		TaxRate:         cfg.Order.TaxRate,
		AllowGuest:      cfg.Order.AllowGuest,
		ReferencePrefix: cfg.Order.ReferencePrefix,
	})
	c.CatalogService = service.NewCatalogService(c.CatalogRepo)

	c.AuthHandler = handler.NewAuthHandler(c.AuthService, c.Sessions, cfg.Session.CookieName)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService)
	c.CatalogHandler = handler.NewCatalogHandler(c.CatalogService, log)
	c.HealthHandler = handler.NewHealthHandler(db, redisClient)

	return c
}
