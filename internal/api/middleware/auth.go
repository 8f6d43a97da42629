package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mediana/WHX-BookingService/internal/api/handlers"
)

// adminTokenHeader заголовок с токеном администратора
const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет статический токен администратора.
// Публичной аутентификации посетителей у сервиса нет, защищаются
// только административные маршруты.
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "missing admin token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
