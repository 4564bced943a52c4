package middleware

import (
	"net"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor returns how the client IP is derived. Without trusted proxies it
// is the TCP peer and forwarding headers are ignored. Otherwise X-Forwarded-For
// is walked from the right, trusting only hops inside the given CIDRs.
// Invalid CIDRs are skipped; config validation rejects them at startup.
func NewIPExtractor(trustedProxies []string) echo.IPExtractor {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			options = append(options, echo.TrustIPRange(ipNet))
		}
	}

	return echo.ExtractIPFromXFFHeader(options...)
}
