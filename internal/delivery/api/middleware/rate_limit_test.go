package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func callLimited(rl *RateLimiter, remoteAddr string) error {
	return callLimitedVia(rl, remoteAddr, "")
}

func callLimitedVia(rl *RateLimiter, remoteAddr, forwardedFor string) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set(echo.HeaderXForwardedFor, forwardedFor)
		req.Header.Set(echo.HeaderXRealIP, forwardedFor)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	return rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func TestRateLimiter_PerClientBuckets(t *testing.T) {
	rl := newRateLimiter(rate.Limit(0.5), 2)

	assert.NoError(t, callLimited(rl, "10.0.0.1:1000"))
	assert.NoError(t, callLimited(rl, "10.0.0.1:1001"))
	err := callLimited(rl, "10.0.0.1:1002")
	assert.True(t, errors.Is(err, domainerrors.ErrRateLimited))

	// A different client has its own bucket
	assert.NoError(t, callLimited(rl, "10.0.0.2:1000"))
}

func TestRateLimiter_IgnoresForwardingHeadersFromUntrustedPeers(t *testing.T) {
	rl := newRateLimiter(rate.Limit(1), 1)

	allowed := 0
	for i := range 20 {
		if callLimitedVia(rl, "198.51.100.7:4000", fmt.Sprintf("203.0.113.%d", i)) == nil {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
}

func TestRateLimiter_TrustedProxyForwardsClientIP(t *testing.T) {
	rl := newRateLimiter(rate.Limit(1), 1)
	rl.clientIP = NewIPExtractor([]string{"10.0.0.0/8"})

	// Behind the proxy each forwarded client gets its own bucket
	assert.NoError(t, callLimitedVia(rl, "10.1.2.3:4000", "203.0.113.1"))
	assert.NoError(t, callLimitedVia(rl, "10.1.2.3:4000", "203.0.113.2"))
	assert.True(t, errors.Is(callLimitedVia(rl, "10.1.2.3:4000", "203.0.113.1"), domainerrors.ErrRateLimited))

	// A peer outside the trusted range cannot pick its bucket
	assert.NoError(t, callLimitedVia(rl, "198.51.100.7:4000", "203.0.113.9"))
	assert.True(t, errors.Is(callLimitedVia(rl, "198.51.100.7:4000", "203.0.113.10"), domainerrors.ErrRateLimited))
}

func TestRateLimiter_DisabledWithNonPositiveRate(t *testing.T) {
	rl := newRateLimiter(0, 1)

	for range 5 {
		assert.NoError(t, callLimited(rl, "10.0.0.1:1000"))
	}
	assert.Empty(t, rl.limiters)
}

func TestRateLimiter_SweepForgetsIdleClients(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := newRateLimiter(rate.Limit(1), 1)
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	now = now.Add(limiterIdleTTL - time.Second)
	rl.getLimiter("10.0.0.2")
	now = now.Add(2 * time.Second)

	rl.sweep()

	assert.NotContains(t, rl.limiters, "10.0.0.1")
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestRateLimiter_StopEndsSweeper(t *testing.T) {
	rl := newRateLimiter(rate.Limit(1), 1)
	rl.Start()

	stopped := make(chan struct{})
	go func() {
		rl.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
