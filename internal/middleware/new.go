package middleware

import (
	pkgLog "minwon-analytics/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

// New creates the shared gin middleware set. perMin <= 0 disables rate
// limiting.
func New(l pkgLog.Logger, perMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(perMin),
	}
}
