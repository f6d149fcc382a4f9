package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Post("/auth/register", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

// TestCheckHTTPMethod_UnsupportedMethod verifies that a known path hit with
// an unregistered method yields 404, not chi's default 405.
func TestCheckHTTPMethod_UnsupportedMethod(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodGet, "/auth/register", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_SupportedMethodPassesThrough(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}
