package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"devfolio/internal/application/access/usecases"
	"devfolio/internal/domain/portfolio"
	"devfolio/internal/infrastructure/config"
	"devfolio/internal/infrastructure/email"
	"devfolio/internal/infrastructure/ratelimit"
	"devfolio/internal/infrastructure/repository"
	"devfolio/internal/interfaces/http/handlers"
	"devfolio/internal/interfaces/http/middleware"
	"devfolio/internal/interfaces/http/routes"
	"devfolio/internal/shared/logger"
	"devfolio/internal/shared/services/markdown"
)

// Router wires repositories, use cases, and handlers into a gin engine.
type Router struct {
	engine           *gin.Engine
	cfg              *config.Config
	log              logger.Interface
	redis            *redis.Client
	accessHandler    *handlers.AccessHandler
	portfolioHandler *handlers.PortfolioHandler
	requestRateLimit gin.HandlerFunc
}

// NewRouter creates the HTTP router with all dependencies.
func NewRouter(db *gorm.DB, content *portfolio.Portfolio, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	accessRepo := repository.NewGuestAccessRepository(db)

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		AdminEmail:  cfg.Access.AdminEmail,
	})

	adminSecret := cfg.Access.AdminSecret

	requestUC := usecases.NewRequestAccessUseCase(accessRepo, notifier, adminSecret, log)
	approveUC := usecases.NewApproveAccessUseCase(accessRepo, adminSecret, log)
	denyUC := usecases.NewDenyAccessUseCase(accessRepo, adminSecret, log)
	checkUC := usecases.NewCheckAccessUseCase(accessRepo, log)
	listUC := usecases.NewListAccessRequestsUseCase(accessRepo, adminSecret, log)

	accessHandler := handlers.NewAccessHandler(
		requestUC, approveUC, denyUC, checkUC, listUC, cfg.Access.BaseURL)

	portfolioHandler := handlers.NewPortfolioHandler(content, markdown.NewMarkdownService())

	r := &Router{
		engine:           engine,
		cfg:              cfg,
		log:              log,
		accessHandler:    accessHandler,
		portfolioHandler: portfolioHandler,
	}

	if cfg.RateLimit.Enabled {
		r.redis = initRedis(cfg, log)
		if r.redis != nil {
			limiter := ratelimit.NewRedisRateLimiter(r.redis)
			r.requestRateLimit = middleware.RateLimit(limiter, ratelimit.Config{
				Requests:      cfg.RateLimit.Requests,
				WindowSeconds: cfg.RateLimit.WindowSeconds,
			}, log)
		}
	}

	return r
}

// initRedis creates and tests the Redis client connection. A failed
// connection disables rate limiting instead of blocking startup.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, rate limiting disabled", "error", err)
		return nil
	}
	log.Infow("Redis connection established")

	return redisClient
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAccessRoutes(r.engine, &routes.AccessRouteConfig{
		AccessHandler: r.accessHandler,
		RateLimit:     r.requestRateLimit,
	})

	routes.SetupPortfolioRoutes(r.engine, &routes.PortfolioRouteConfig{
		PortfolioHandler: r.portfolioHandler,
	})
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases router-owned connections.
func (r *Router) Close() error {
	if r.redis != nil {
		return r.redis.Close()
	}
	return nil
}
