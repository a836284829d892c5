package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	paymentUsecases "github.com/vnstore/paycore/internal/application/payment/usecases"
	"github.com/vnstore/paycore/internal/infrastructure/auth"
	"github.com/vnstore/paycore/internal/infrastructure/cache"
	"github.com/vnstore/paycore/internal/infrastructure/config"
	"github.com/vnstore/paycore/internal/infrastructure/email"
	"github.com/vnstore/paycore/internal/infrastructure/metrics"
	"github.com/vnstore/paycore/internal/infrastructure/payment/qrcode"
	"github.com/vnstore/paycore/internal/infrastructure/payment/vnpay"
	"github.com/vnstore/paycore/internal/infrastructure/permission"
	"github.com/vnstore/paycore/internal/infrastructure/ratelimit"
	"github.com/vnstore/paycore/internal/infrastructure/scheduler"
	"github.com/vnstore/paycore/internal/interfaces/http/middleware"
	"github.com/vnstore/paycore/internal/shared/logger"
	"github.com/vnstore/paycore/internal/shared/services/markdown"
)

// services holds collaborators shared by several use cases.
type services struct {
	settlement  *paymentUsecases.SettlementService
	gateway     paymentgateway.Gateway
	qrGenerator paymentgateway.QRGenerator
	methodCache paymentUsecases.PaymentMethodCache
}

// ============================================================
// Section 1: Infrastructure - Redis, repositories, auth, metrics
// ============================================================

func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db)
	c.metrics = metrics.NewPaymentMetrics()

	jwtSvc, err := auth.NewJWTService(cfg.Auth.JWT)
	if err != nil {
		log.Fatalw("failed to initialize JWT service", "error", err)
	}
	c.jwtSvc = jwtSvc

	enforcer, err := permission.NewEnforcer(c.db, cfg.Auth.CasbinModelPath, log)
	if err != nil {
		log.Fatalw("failed to initialize permission enforcer", "error", err)
	}
	if err := enforcer.InitPaymentPermissions(); err != nil {
		log.Fatalw("failed to seed payment permissions", "error", err)
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.redis),
		ratelimit.Limits{PerMinute: cfg.Redis.RateLimitPerMinute},
		log,
	)
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established successfully", "address", cfg.Redis.GetAddr())

	return redisClient
}

// ============================================================
// Section 2: Payment collaborators - gateway, QR renderer, notifiers
// ============================================================

func (c *Container) initPaymentServices() {
	cfg := c.cfg
	log := c.log

	c.svcs = &services{
		gateway:     newVNPayGateway(cfg, log),
		qrGenerator: qrcode.NewGenerator(cfg.QR, log),
		methodCache: cache.NewRedisPaymentMethodCache(
			c.redis,
			time.Duration(cfg.Redis.MethodCacheTTLSeconds)*time.Second,
			log,
		),
	}

	settlement := paymentUsecases.NewSettlementService(c.repos.orderRepo, c.repos.claimRepo, c.repos.txMgr, log)
	settlement.SetMetrics(c.metrics)
	settlement.AddNotifier(c.metrics)

	if cfg.Email.Enabled {
		sender, err := email.NewSMTPEmailService(cfg.Email)
		if err != nil {
			log.Fatalw("failed to initialize email service", "error", err)
		}
		settlement.AddNotifier(email.NewReceiptNotifier(sender, markdown.NewMarkdownService(), cfg.Email.StoreName, log))
		log.Infow("receipt emails enabled", "smtp_host", cfg.Email.SMTPHost)
	}

	c.svcs.settlement = settlement
}

// newVNPayGateway builds the VNPAY adapter. Without merchant credentials the
// service still starts and every VNPAY operation reports the gateway as
// unavailable.
func newVNPayGateway(cfg *config.Config, log logger.Interface) paymentgateway.Gateway {
	gateway, err := vnpay.NewGateway(cfg.VNPay, log)
	if err != nil {
		log.Warnw("VNPAY gateway disabled", "error", err)
		return unconfiguredGateway{}
	}
	return gateway
}

// ============================================================
// Section 4b: Background jobs
// ============================================================

func (c *Container) initScheduler() {
	if !c.ucs.sweepClaims.Enabled() {
		c.log.Infow("stale claim sweep disabled", "claim_ttl_hours", c.cfg.BankTransfer.ClaimTTLHours)
		return
	}

	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		c.log.Fatalw("failed to create scheduler", "error", err)
	}
	if err := manager.RegisterClaimSweepJob(c.ucs.sweepClaims, c.cfg.BankTransfer.SweepInterval()); err != nil {
		c.log.Fatalw("failed to register claim sweep job", "error", err)
	}
	c.schedulerManager = manager
}
