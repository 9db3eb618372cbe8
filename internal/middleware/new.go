package middleware

import (
	"creator-studio/pkg/log"
)

// Middleware bundles the HTTP middleware shared by all delivery
// layers. The zero value applies no rate limiting.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin caps how often one
// client may hit rate-limited routes; zero or negative disables the
// limit.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newRateLimiter(requestsPerMin)
	}
	return m
}
