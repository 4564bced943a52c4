package middleware

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"ticketdesk/config"
	domainerrors "ticketdesk/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 3 * time.Minute
	limiterIdleTTL       = 5 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a token bucket per client IP. A non-positive rate disables it.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
	clientIP echo.IPExtractor
	now      func() time.Time
	stop     chan struct{}
	done     chan struct{}
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg *config.Config
}

// NewRateLimiter builds the limiter from config and runs its sweeper for the life of the app.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := newRateLimiter(rate.Limit(params.Cfg.RateLimit.Rate), params.Cfg.RateLimit.Burst)
	rl.clientIP = NewIPExtractor(params.Cfg.HTTP.TrustedProxies)
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			rl.Start()

			return nil
		},
		OnStop: func(context.Context) error {
			rl.Stop()

			return nil
		},
	})

	return rl
}

func newRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     r,
		burst:    max(burst, 1),
		clientIP: echo.ExtractIPDirect(),
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the stale-entry sweeper.
func (rl *RateLimiter) Start() {
	go rl.cleanupLoop()
}

// Stop ends the sweeper and waits for it to exit. Stop must follow Start.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
	<-rl.done
}

func (rl *RateLimiter) enabled() bool {
	return rl.rate > 0
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if l, exists := rl.limiters[ip]; exists {
		l.lastSeen = now
		return l.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[ip] = &ipLimiter{limiter: limiter, lastSeen: now}

	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	defer close(rl.done)

	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep forgets clients idle for longer than limiterIdleTTL.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, l := range rl.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, ip)
		}
	}
}

// Middleware returns an Echo middleware that enforces the rate limit.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !rl.enabled() {
			return next
		}

		return func(c echo.Context) error {
			if !rl.getLimiter(rl.clientIP(c.Request())).Allow() {
				retryAfter := max(int(math.Ceil(1/float64(rl.rate))), 1)
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(retryAfter))

				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
