package http

import (
	"time"

	billingUsecases "github.com/orris-inc/toolbox/internal/application/billing/usecases"
	"github.com/orris-inc/toolbox/internal/application/quota"
	"github.com/orris-inc/toolbox/internal/infrastructure/auth"
	"github.com/orris-inc/toolbox/internal/infrastructure/cache"
	"github.com/orris-inc/toolbox/internal/infrastructure/payment"
	"github.com/orris-inc/toolbox/internal/infrastructure/permission"
	"github.com/orris-inc/toolbox/internal/infrastructure/prober"
	"github.com/orris-inc/toolbox/internal/infrastructure/ratelimit"
	shareddb "github.com/orris-inc/toolbox/internal/shared/db"
	"github.com/orris-inc/toolbox/internal/shared/services/markdown"
)

// rateLimitWindow is the fixed window the per-minute limits apply to.
const rateLimitWindow = time.Minute

// services holds stateless infrastructure services shared by use cases.
type services struct {
	hasher      *auth.BcryptPasswordHasher
	jwt         *auth.JWTService
	evaluator   *quota.Evaluator
	prober      *prober.HTTPProber
	markdown    markdown.Renderer
	rateLimiter ratelimit.RateLimiter
	eventClaims billingUsecases.EventClaimer
	verifier    *payment.StripeWebhookVerifier
	permissions *permission.Enforcer
	transactor  *shareddb.TransactionManager
}

func (c *Container) initServices() error {
	s := &services{
		hasher:     auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
		jwt:        auth.NewJWTService(c.cfg.Auth.JWT.Secret, time.Duration(c.cfg.Auth.JWT.ExpiresHours)*time.Hour),
		prober:     prober.NewHTTPProber(prober.Config{Timeout: c.cfg.Uptime.Timeout, UserAgent: c.cfg.Uptime.UserAgent}),
		markdown:   markdown.NewRenderer(),
		verifier:   payment.NewStripeWebhookVerifier(c.cfg.Billing.StripeWebhookSecret),
		transactor: shareddb.NewTransactionManager(c.db),
	}

	permissions, err := permission.NewEnforcer(c.log.Component("permission"))
	if err != nil {
		return err
	}
	s.permissions = permissions

	s.evaluator = quota.NewEvaluator(quota.NewUserSubjectReader(c.repos.userRepo), c.repos.counter, c.log.Component("quota"))
	s.evaluator.SetRecorder(c.metrics)

	if c.redis != nil {
		s.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)
		s.eventClaims = cache.NewRedisProcessedEventStore(c.redis)
	} else {
		s.rateLimiter = ratelimit.NewMemoryRateLimiter(2 * rateLimitWindow)
		s.eventClaims = cache.NewMemoryProcessedEventStore(cache.ProcessedEventTTL)
	}

	if c.cfg.Billing.StripeWebhookSecret == "" {
		c.log.Warnw("stripe webhook secret not configured, webhooks will be rejected")
	}

	c.svcs = s
	return nil
}
