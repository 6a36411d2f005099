// Package security applies standard security headers to every response.
package security

import "net/http"

// HeadersConfig holds security headers configuration
type HeadersConfig struct {
	CSP                 string
	XFrameOptions       string
	XContentTypeOptions string
	ReferrerPolicy      string
	CrossOriginOpener   string
	CrossOriginResource string
}

// DefaultHeadersConfig returns secure defaults for a JSON API
func DefaultHeadersConfig() HeadersConfig {
	return HeadersConfig{
		CSP: "default-src 'none'; " +
			"frame-ancestors 'none'; " +
			"base-uri 'none'",

		XFrameOptions:       "DENY",
		XContentTypeOptions: "nosniff",
		ReferrerPolicy:      "strict-origin-when-cross-origin",
		CrossOriginOpener:   "same-origin",
		CrossOriginResource: "same-origin",
	}
}

// HeadersMiddleware applies security headers to responses
type HeadersMiddleware struct {
	config HeadersConfig
}

// NewHeadersMiddleware creates a new security headers middleware
func NewHeadersMiddleware(config HeadersConfig) *HeadersMiddleware {
	return &HeadersMiddleware{config: config}
}

// Middleware returns the HTTP middleware function
func (h *HeadersMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.applyHeaders(w)
		next.ServeHTTP(w, r)
	})
}

func (h *HeadersMiddleware) applyHeaders(w http.ResponseWriter) {
	hdr := w.Header()
	if h.config.CSP != "" {
		hdr.Set("Content-Security-Policy", h.config.CSP)
	}
	if h.config.XFrameOptions != "" {
		hdr.Set("X-Frame-Options", h.config.XFrameOptions)
	}
	if h.config.XContentTypeOptions != "" {
		hdr.Set("X-Content-Type-Options", h.config.XContentTypeOptions)
	}
	if h.config.ReferrerPolicy != "" {
		hdr.Set("Referrer-Policy", h.config.ReferrerPolicy)
	}
	if h.config.CrossOriginOpener != "" {
		hdr.Set("Cross-Origin-Opener-Policy", h.config.CrossOriginOpener)
	}
	if h.config.CrossOriginResource != "" {
		hdr.Set("Cross-Origin-Resource-Policy", h.config.CrossOriginResource)
	}
}
