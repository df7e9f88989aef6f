package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/orris-inc/toolbox/internal/application/monitor/dto"
	"github.com/orris-inc/toolbox/internal/domain/monitor"
	"github.com/orris-inc/toolbox/internal/infrastructure/config"
	"github.com/orris-inc/toolbox/internal/infrastructure/metrics"
	"github.com/orris-inc/toolbox/internal/infrastructure/scheduler"
	"github.com/orris-inc/toolbox/internal/interfaces/http/middleware"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

// Container holds every infrastructure component, repository, use case and
// handler, wired together, plus a Shutdown method for graceful termination.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics *metrics.Metrics

	repos *repositories
	svcs  *services
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware

	// Background uptime scheduler, started only on request
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires the object graph. It fails when a configured backing
// service cannot be reached.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		log:     log,
		metrics: metrics.New(),
	}

	// Section 1: Infrastructure - Redis, Repositories, Services
	if err := c.initRedis(); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

func (c *Container) initRedis() error {
	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, using in-memory rate limits and event claims")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis at %s: %w", c.cfg.Redis.GetAddr(), err)
	}

	c.log.Infow("redis connection established", "address", c.cfg.Redis.GetAddr())
	c.redis = client
	return nil
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartScheduler runs uptime cycles in-process on the configured interval.
func (c *Container) StartScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Component("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := manager.RegisterUptimeCycle(c.ucs.runCycleUC, c.cfg.Uptime.Interval); err != nil {
		return fmt.Errorf("failed to register uptime cycle: %w", err)
	}
	manager.Start()
	c.schedulerManager = manager
	return nil
}

// RunUptimeCycle probes every active site once.
func (c *Container) RunUptimeCycle(ctx context.Context) (*dto.CycleReport, error) {
	return c.ucs.runCycleUC.Execute(ctx, monitor.All())
}

// Shutdown stops background work and releases connections.
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
