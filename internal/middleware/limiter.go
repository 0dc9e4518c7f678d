package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"bookshop-be/internal/httpx"
	"bookshop-be/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	// Auth / payment (Strict)
	limitStrict = rate.Limit(2)
	burstStrict = 5

	// General (Default)
	limitGeneral = rate.Limit(10)
	burstGeneral = 20

	// Frontend-heavy apps
	limitFrontend = rate.Limit(20)
	burstFrontend = 40

	// Internal / trusted services
	limitInternal = rate.Limit(100)
	burstInternal = 200
)

const visitorTTL = 3 * time.Minute

// strictRoutes are the gin route patterns limited by the strict tier.
var strictRoutes = map[string]bool{
	"/v1/auth/login":    true,
	"/v1/auth/register": true,
	"/v1/shop/payment":  true,
}

// visitor holds the rate limiter and the last time it was seen.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per identity and tier.
type Limiter struct {
	internalKey string

	mu       sync.Mutex
	visitors map[string]*visitor
}

func NewLimiter(internalKey string) *Limiter {
	return &Limiter{
		internalKey: internalKey,
		visitors:    make(map[string]*visitor),
	}
}

// getVisitor retrieves or creates a rate limiter for the given key.
func (l *Limiter) getVisitor(key string, r rate.Limit, b int) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(r, b)
		l.visitors[key] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// Cleanup removes idle visitors every interval until ctx is done.
func (l *Limiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evict(time.Now())
		}
	}
}

func (l *Limiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(l.visitors, key)
		}
	}
}

// Middleware answers 429 once the caller's bucket for the resolved tier is empty.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, burst, tier := l.resolveRateTier(c)

		// Prefer User ID if authenticated
		var identity string
		if userID, ok := utils.GetUserIDFromContext(c.Request.Context()); ok {
			identity = fmt.Sprintf("user:%d", userID)
		} else if deviceID := c.GetHeader("X-Device-ID"); deviceID != "" {
			identity = "device:" + deviceID
		} else {
			identity = "ip:" + c.ClientIP()
		}

		// e.g. "user:1:strict"
		key := fmt.Sprintf("%s:%s", identity, tier)

		if !l.getVisitor(key, limit, burst).Allow() {
			httpx.Error(c, http.StatusTooManyRequests, "too many requests")
			return
		}

		c.Next()
	}
}

// resolveRateTier determines which rate limit policy applies to the request.
func (l *Limiter) resolveRateTier(c *gin.Context) (rate.Limit, int, string) {
	if l.internalKey != "" && c.GetHeader("X-Service-Auth") == l.internalKey {
		return limitInternal, burstInternal, "internal"
	}

	if strictRoutes[c.FullPath()] {
		return limitStrict, burstStrict, "strict"
	}

	if c.GetHeader("X-Client-Type") == "frontend-heavy" {
		return limitFrontend, burstFrontend, "frontend"
	}

	return limitGeneral, burstGeneral, "general"
}
