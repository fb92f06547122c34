// internal/app/system/ratelimit/ratelimit.go

// Package ratelimit guards the sign-in endpoint with sliding-window
// counters. Limits apply per client address and per account email, so
// neither a single host nor a single targeted account can be hammered.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter counts events per key over a fixed window. Safe for concurrent
// use. Expired windows are pruned opportunistically on each Allow call.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
}

type window struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a limiter allowing limit events per duration per key.
func NewLimiter(limit int, duration time.Duration) *Limiter {
	return &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
	}
}

// Allow reports whether another event for key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.pruneLocked(now)

	w, ok := l.windows[key]
	if !ok || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Reset clears the window for a key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

func (l *Limiter) pruneLocked(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.expiresAt) {
			delete(l.windows, key)
		}
	}
}

// ClientIP extracts the client address from a request, preferring the
// proxy headers set by load balancers over RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SignInLimiter pairs an address window with an account window for the
// password sign-in flow.
type SignInLimiter struct {
	byAddr  *Limiter
	byEmail *Limiter
}

// NewSignInLimiter returns a limiter with the defaults used in production:
// 10 attempts per address per minute, 5 attempts per account per 5 minutes.
func NewSignInLimiter() *SignInLimiter {
	return &SignInLimiter{
		byAddr:  NewLimiter(10, time.Minute),
		byEmail: NewLimiter(5, 5*time.Minute),
	}
}

// NewSignInLimiterWithConfig returns a limiter with custom limits.
func NewSignInLimiterWithConfig(addrLimit int, addrWindow time.Duration, emailLimit int, emailWindow time.Duration) *SignInLimiter {
	return &SignInLimiter{
		byAddr:  NewLimiter(addrLimit, addrWindow),
		byEmail: NewLimiter(emailLimit, emailWindow),
	}
}

// Check reports whether a sign-in attempt should proceed; the message
// explains a refusal.
func (sl *SignInLimiter) Check(r *http.Request, email string) (bool, string) {
	if !sl.byAddr.Allow(ClientIP(r)) {
		return false, "too many sign-in attempts, wait a minute before trying again"
	}
	if email != "" {
		if !sl.byEmail.Allow(strings.ToLower(strings.TrimSpace(email))) {
			return false, "too many sign-in attempts for this account, wait a few minutes"
		}
	}
	return true, ""
}

// ResetEmail clears the account window after a successful sign-in.
func (sl *SignInLimiter) ResetEmail(email string) {
	if email != "" {
		sl.byEmail.Reset(strings.ToLower(strings.TrimSpace(email)))
	}
}
