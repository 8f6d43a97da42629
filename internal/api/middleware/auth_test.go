package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func adminRouter(token string) *mux.Router {
	r := mux.NewRouter()
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(AdminAuth(token))
	admin.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAdminAuth_ValidToken(t *testing.T) {
	router := adminRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("X-Admin-Token", "secret")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_MissingToken(t *testing.T) {
	router := adminRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_InvalidToken(t *testing.T) {
	router := adminRouter("secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
