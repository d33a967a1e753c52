package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*rateEntry)
	loginMapMu sync.Mutex

	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allow(loginMap, &loginMapMu, c.ClientIP(), 20, time.Minute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiados intentos de login. Intente en 1 minuto."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allow(apiRateMap, &apiRateMapMu, c.ClientIP(), limit, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}

func allow(m map[string]*rateEntry, mu *sync.Mutex, ip string, limit int, window time.Duration) bool {
	mu.Lock()
	entry, exists := m[ip]
	if !exists {
		entry = &rateEntry{}
		m[ip] = entry
	}
	mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(window)
	}
	entry.count++
	return entry.count <= limit
}

// ── Purge goroutine ───────────────────────────────────────────────────────────
// Periodically removes expired entries from both maps so IPs that never return
// do not accumulate forever.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0
		for _, pair := range []struct {
			m  map[string]*rateEntry
			mu *sync.Mutex
		}{{loginMap, &loginMapMu}, {apiRateMap, &apiRateMapMu}} {
			pair.mu.Lock()
			for ip, entry := range pair.m {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(pair.m, ip)
					purged++
				}
				entry.mu.Unlock()
			}
			pair.mu.Unlock()
		}
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}
