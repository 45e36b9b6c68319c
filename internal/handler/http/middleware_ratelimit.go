package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/jellydator/ttlcache/v3"
)

// rateWindow counts the hits of one client in a fixed window.
type rateWindow struct {
	count int
	reset time.Time
}

// rateLimiter allows limit requests per client address per window. Windows
// live in a ttlcache that drops them once they are over.
type rateLimiter struct {
	name   string
	limit  int
	window time.Duration
	skip   bool

	mu      sync.Mutex
	windows *ttlcache.Cache[string, rateWindow]
	now     func() time.Time
}

func newRateLimiter(name string, limit int, window time.Duration, skip bool) *rateLimiter {
	windows := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, rateWindow](),
	)
	go windows.Start()

	return &rateLimiter{
		name:    name,
		limit:   limit,
		window:  window,
		skip:    skip,
		windows: windows,
		now:     time.Now,
	}
}

// take records a hit for key and reports the hits left in the window, when
// the window ends and whether the hit is allowed.
func (l *rateLimiter) take(key string) (remaining int, reset time.Time, allowed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w := rateWindow{reset: now.Add(l.window)}
	if item := l.windows.Get(key); item != nil && now.Before(item.Value().reset) {
		w = item.Value()
	}
	w.count++
	l.windows.Set(key, w, w.reset.Sub(now))

	return max(l.limit-w.count, 0), w.reset, w.count <= l.limit
}

func (l *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.skip {
			next.ServeHTTP(w, r)
			return
		}

		remaining, reset, allowed := l.take(clientAddress(r))

		resetIn := int(math.Ceil(reset.Sub(l.now()).Seconds()))
		header := w.Header()
		header.Set("RateLimit-Limit", strconv.Itoa(l.limit))
		header.Set("RateLimit-Remaining", strconv.Itoa(remaining))
		header.Set("RateLimit-Reset", strconv.Itoa(max(resetIn, 0)))

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(l.name).Inc()
			logger.FromRequest(r).Warn().Str("limiter", l.name).Msg("rate limit exceeded")

			header.Set("Retry-After", strconv.Itoa(max(resetIn, 0)))
			http.Error(w, ErrTooManyRequests.Error(), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Close stops the expiry goroutine.
func (l *rateLimiter) Close() {
	l.windows.Stop()
}

// clientAddress returns the host part of the remote address. The router runs
// chi's RealIP first, so proxies are honoured.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
