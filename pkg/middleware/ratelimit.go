package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"hotel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit is a fixed-window counter per client IP and path kept in Redis.
// When rdb is nil or the limiter is disabled it passes every request through,
// and Redis errors let the request through as well.
func RateLimit(rdb *redis.Client, cfg utils.RateLimitConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	if rdb == nil || !cfg.Enabled || cfg.Requests < 1 {
		return func(next http.Handler) http.Handler { return next }
	}

	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	trusted := parseProxies(cfg.TrustedProxies, logger)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "ratelimit:" + r.URL.Path + ":" + clientIP(r, trusted)

			// INCR and EXPIRE NX share one MULTI so a counter never outlives its window
			pipe := rdb.TxPipeline()
			incr := pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			if _, err := pipe.Exec(ctx); err != nil {
				logger.Warn("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			count := incr.Val()
			if count > int64(cfg.Requests) {
				retry, err := rdb.TTL(ctx, key).Result()
				if err != nil || retry <= 0 {
					retry = window
				}
				logger.Warn("Rate limit exceeded",
					zap.String("key", key),
					zap.Int64("count", count))
				utils.ResponseTooManyRequests(w, retry)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the TCP peer address. Forwarding headers are only honoured when
// the peer is a trusted proxy, and then the right-most untrusted hop wins.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	if peer == "" {
		return "unknown"
	}

	addr, err := netip.ParseAddr(peer)
	if err != nil || !isTrusted(addr, trusted) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !isTrusted(hop, trusted) {
			return hop.String()
		}
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.String()
	}
	return peer
}

func isTrusted(addr netip.Addr, trusted []netip.Prefix) bool {
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// parseProxies accepts single addresses or CIDR ranges and skips bad entries.
func parseProxies(values []string, logger *zap.Logger) []netip.Prefix {
	var out []netip.Prefix
	for _, v := range values {
		if p, err := netip.ParsePrefix(v); err == nil {
			out = append(out, p.Masked())
			continue
		}
		if a, err := netip.ParseAddr(v); err == nil {
			a = a.Unmap()
			out = append(out, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		logger.Warn("Ignoring invalid trusted proxy", zap.String("value", v))
	}
	return out
}
