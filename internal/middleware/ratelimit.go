package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/BOSTONE069/procurement-service/internal/utils"

	"golang.org/x/time/rate"
)

// RateLimiter ведёт token bucket на каждого вызывающего и периодически
// вычищает простаивающие записи.
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu    sync.Mutex
	byKey map[string]*limiterEntry
	hits  uint64
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создаёт лимитер по ключу; возвращает nil при rps <= 0,
// nil-лимитер пропускает все запросы.
func NewRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	if rps <= 0 || burst <= 0 {
		return nil
	}
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	return &RateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		byKey:   make(map[string]*limiterEntry),
	}
}

// Allow сообщает, можно ли израсходовать один токен для ключа в момент now.
func (l *RateLimiter) Allow(key string, now time.Time) bool {
	if l == nil || key == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byKey[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byKey[key] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%256 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byKey {
			if v.lastSeen.Before(cutoff) {
				delete(l.byKey, k)
			}
		}
	}

	return allowed
}

// Wrap возвращает middleware, ограничивающее частоту запросов по
// идентичности вызывающего (параметр username, иначе адрес клиента).
func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	if l == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := string(utils.CallerIdentity(r))
		if key == "" {
			key = r.RemoteAddr
		}
		if !l.Allow(key, time.Now()) {
			utils.SendErrorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
