// Package cors decides whether a request's declared origin may receive
// cross-origin response headers and builds those headers. Used by the API
// routes consulted from the browser extension.
package cors

import (
	"net/http"
	"strings"
)

// default extension-origin prefix for the browser extension client
const DefaultExtensionPrefix = "chrome-extension://"

var loopbackPrefixes = []string{"http://localhost", "http://127.0.0.1"}

// Policy holds everything the resolver needs to decide on an origin. All
// inputs are explicit; the resolver never reads process environment.
type Policy struct {
	AppURL          string // configured application base URL, always allowed
	ExtensionPrefix string // origins with this prefix are allowed dynamically
	DevMode         bool   // allow loopback origins in development
}

// NewPolicy creates a policy with defaults applied
func NewPolicy(appURL string, devMode bool) Policy {
	return Policy{
		AppURL:          strings.TrimRight(appURL, "/"),
		ExtensionPrefix: DefaultExtensionPrefix,
		DevMode:         devMode,
	}
}

// Resolve returns the origin when it is permitted cross-origin access and
// "" to signal deny. Pure function of the origin and the policy.
func (p Policy) Resolve(origin string) string {
	if origin == "" {
		return ""
	}

	// allow-set: the configured app URL plus the requesting origin itself
	// when it belongs to the extension scheme
	if origin == p.AppURL {
		return origin
	}
	if p.ExtensionPrefix != "" && strings.HasPrefix(origin, p.ExtensionPrefix) {
		return origin
	}

	// permissive localhost in development only
	if p.DevMode {
		for _, prefix := range loopbackPrefixes {
			if strings.HasPrefix(origin, prefix) {
				return origin
			}
		}
	}

	return ""
}

// Headers builds the fixed header set for an approved origin. Total and
// idempotent: the same origin always yields the same map.
func Headers(origin string) map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":      origin,
		"Access-Control-Allow-Methods":     "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers":     "Content-Type, Authorization",
		"Access-Control-Allow-Credentials": "true",
	}
}

// Middleware applies the policy to every request: approved origins get the
// CORS headers attached, denied ones get none. OPTIONS preflights are
// answered directly.
func (p Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := p.Resolve(r.Header.Get("Origin")); origin != "" {
			for k, v := range Headers(origin) {
				w.Header().Set(k, v)
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
