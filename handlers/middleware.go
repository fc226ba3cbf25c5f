// handlers/middleware.go
package handlers

import "net/http"

// WithCORS allows the external UI collaborator (running on its own origin)
// to call the API. An empty allowOrigin disables the header entirely.
func WithCORS(allowOrigin string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
		}
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}
