package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuthRedirectsAnonymousUsers(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-key"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAuth(store)(next)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRequireAuthAllowsPublicPaths(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-key"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAuth(store)(next)

	for _, path := range []string{"/", "/login", "/register", "/healthz", "/static/style.css"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s should be public", path)
	}
}

func TestRequireAuthPassesLoggedInUsers(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-key"))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireAuth(store)(next)

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	seedRec := httptest.NewRecorder()
	session, _ := store.Get(seed, "app-session")
	session.Values["user_id"] = 1
	require.NoError(t, session.Save(seed, seedRec))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range seedRec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
