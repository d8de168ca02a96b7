package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/LootForge_Go/internal/logger"
)

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware requires the X-API-Key header on every non-public path.
// Keys are compared in constant time.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				ip := clientIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", got != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector counts requests and failed logins per IP over
// a fixed window.
type SuspiciousActivityDetector struct {
	window      time.Duration
	maxRequests int
	now         func() time.Time

	mu          sync.Mutex
	failedAuth  map[string]int
	requests    map[string]int
	windowStart time.Time
}

// NewSuspiciousActivityDetector uses the default window and limits
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(DetectorWindow, DetectorMaxRequests, time.Now)
}

func newDetector(window time.Duration, maxRequests int, now func() time.Time) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		window:      window,
		maxRequests: maxRequests,
		now:         now,
		failedAuth:  make(map[string]int),
		requests:    make(map[string]int),
		windowStart: now(),
	}
}

// RecordFailedAuth counts a failed login and returns the count in this window
func (d *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.failedAuth[ip]++
	n := d.failedAuth[ip]
	if n >= DetectorFailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
	return n
}

// Allow counts a request and reports whether the IP is still under the limit
func (d *SuspiciousActivityDetector) Allow(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rollWindow()
	d.requests[ip]++
	n := d.requests[ip]
	if n <= d.maxRequests {
		return true
	}
	if n%DetectorAlertEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", n)
	}
	return false
}

// rollWindow clears the counters once the window has passed. Caller holds mu.
func (d *SuspiciousActivityDetector) rollWindow() {
	if now := d.now(); now.Sub(d.windowStart) > d.window {
		clear(d.requests)
		clear(d.failedAuth)
		d.windowStart = now
	}
}

// RateLimitMiddleware rejects clients over the detector's request limit
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP trusts X-Forwarded-For only when the direct peer is a trusted
// proxy, and then takes the last hop it reports.
func clientIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remote) {
		return remote
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets response headers for a JSON API
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			// swagger UI needs scripts and styles
			if !strings.HasPrefix(r.URL.Path, "/swagger/") {
				h.Set(HeaderCSP, HeaderValueCSPAPI)
			}
			next.ServeHTTP(w, r)
		})
	}
}
