package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client keeps its bucket.
const visitorTTL = 3 * time.Minute

// IPMeta stores the limiter and last seen time for an IP
type IPMeta struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*IPMeta
}

// NewRateLimiter allows requestsPerSecond with bursts of burst per IP.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*IPMeta),
	}
}

func (l *RateLimiter) visitor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	client, exists := l.clients[ip]
	if !exists {
		client = &IPMeta{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = client
	}
	client.lastSeen = l.now()
	return client.limiter
}

// Allow reports whether ip may make a request now.
func (l *RateLimiter) Allow(ip string) bool {
	return l.visitor(ip).Allow()
}

// Sweep forgets clients idle for longer than visitorTTL and returns how many were dropped.
func (l *RateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	dropped := 0
	for ip, client := range l.clients {
		if l.now().Sub(client.lastSeen) > visitorTTL {
			delete(l.clients, ip)
			dropped++
		}
	}
	return dropped
}

// Run sweeps idle clients every minute until ctx is done.
func (l *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

func (l *RateLimiter) retryAfter() string {
	if l.limit <= 0 {
		return "60"
	}
	secs := int(1/float64(l.limit)) + 1
	return strconv.Itoa(secs)
}

const tooManyRequests = "Too many requests. Please try again later."

// Fiber returns the middleware for Fiber.
func (l *RateLimiter) Fiber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !l.Allow(c.IP()) {
			c.Set("Retry-After", l.retryAfter())
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   true,
				"message": tooManyRequests,
			})
		}
		return c.Next()
	}
}

// Gin returns the middleware for Gin.
func (l *RateLimiter) Gin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", l.retryAfter())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": tooManyRequests,
			})
			return
		}
		c.Next()
	}
}
