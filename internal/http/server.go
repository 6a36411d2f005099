// Package http exposes the ledger and session over a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/ledger"
	"fintrack/internal/middleware/ratelimit"
	"fintrack/internal/middleware/security"
	"fintrack/internal/middleware/trace"
	"fintrack/internal/report"
	"fintrack/internal/session"
)

type Server struct {
	http.Server

	ledger  *ledger.Ledger
	session *session.Store

	rateLimiter *ratelimit.Limiter

	// Report views cached per ledger version; mutations invalidate via the
	// ledger subscription.
	totalsCache   *cache.LRUCache[totalsResponse]
	categoryCache *cache.LRUCache[[]categoryEntry]
	monthlyCache  *cache.LRUCache[[]report.MonthFlow]
	cacheManager  *cache.Manager

	shutdownOnce sync.Once
}

// Config holds server construction options.
type Config struct {
	Addr               string
	RateLimitPerMinute int
}

// NewServer configures routes and middleware, returning a ready-to-run
// server.
func NewServer(cfg Config, led *ledger.Ledger, sess *session.Store) *Server {
	s := &Server{
		ledger:  led,
		session: sess,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: cfg.RateLimitPerMinute,
		}),
		totalsCache:   cache.NewLRUCache[totalsResponse](10, 5*time.Minute),
		categoryCache: cache.NewLRUCache[[]categoryEntry](50, 5*time.Minute),
		monthlyCache:  cache.NewLRUCache[[]report.MonthFlow](50, 5*time.Minute),
		cacheManager:  cache.NewManager(),
	}

	s.cacheManager.Register(s.totalsCache)
	s.cacheManager.Register(s.categoryCache)
	s.cacheManager.Register(s.monthlyCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	// Any successful mutation makes every cached report stale.
	led.Subscribe(func(ledger.Event) {
		s.totalsCache.Clear()
		s.categoryCache.Clear()
		s.monthlyCache.Clear()
	})

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleCreateTransaction)
	mux.HandleFunc("PATCH /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	mux.HandleFunc("GET /api/reports/totals", s.handleTotals)
	mux.HandleFunc("GET /api/reports/categories", s.handleCategories)
	mux.HandleFunc("GET /api/reports/monthly", s.handleMonthly)

	mux.HandleFunc("POST /api/session", s.handleSignIn)
	mux.HandleFunc("GET /api/session", s.handleCurrentUser)
	mux.HandleFunc("DELETE /api/session", s.handleSignOut)
	mux.HandleFunc("POST /api/users", s.handleSignUp)
	mux.HandleFunc("PATCH /api/profile", s.handleUpdateProfile)

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	traceMW := trace.NewMiddleware(clientIP)
	secMW := security.NewHeadersMiddleware(security.DefaultHeadersConfig())

	handler := s.withMutationRateLimit(mux)
	handler = traceMW.Middleware(handler)
	handler = secMW.Middleware(handler)

	s.Server = http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// withMutationRateLimit rate-limits mutating methods only; reads are cheap
// and cached.
func (s *Server) withMutationRateLimit(next http.Handler) http.Handler {
	limited := s.rateLimiter.Middleware(clientIP, nil)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodPut:
			limited.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// Shutdown gracefully shuts down the server and cleanup routines
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		s.rateLimiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
