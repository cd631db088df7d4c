package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

// RequireAuth redirects requests without a logged-in session to /login.
// The store is injected so middleware and handlers share the same cookie
// configuration.
func RequireAuth(store sessions.Store) func(http.Handler) http.Handler {
	publicPaths := []string{
		"/",
		"/login",
		"/register",
		"/healthz",
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			for _, publicPath := range publicPaths {
				if path == publicPath {
					next.ServeHTTP(w, r)
					return
				}
			}
			if strings.HasPrefix(path, "/static/") {
				next.ServeHTTP(w, r)
				return
			}

			session, _ := store.Get(r, "app-session")

			userID, ok := session.Values["user_id"].(int)
			if !ok || userID == 0 {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
