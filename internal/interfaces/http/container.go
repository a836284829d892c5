package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vnstore/paycore/internal/infrastructure/auth"
	"github.com/vnstore/paycore/internal/infrastructure/config"
	"github.com/vnstore/paycore/internal/infrastructure/metrics"
	"github.com/vnstore/paycore/internal/infrastructure/scheduler"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases, handlers
// and the background scheduler. It wires everything together and provides
// Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	jwtSvc  *auth.JWTService
	metrics *metrics.PaymentMetrics

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
// Sections run in dependency order.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, auth, metrics
	c.initInfrastructure()

	// Section 2: Payment collaborators - gateway, QR renderer, notifiers
	c.initPaymentServices()

	// Section 3: Use cases
	c.initUseCases()

	// Section 4: Handlers and background jobs
	c.initHandlers()
	c.initScheduler()

	return c
}

// StartScheduler starts registered background jobs.
func (c *Container) StartScheduler() {
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and releases the Redis connection. The
// database is owned by the caller.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
