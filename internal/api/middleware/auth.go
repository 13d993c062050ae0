package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/xalexyi/prenotazioni-ai/internal/api/handlers"
)

// AdminAuth проверяет админский токен в X-Admin-Token или ?token=.
// Сравнение константное по времени.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if got == "" {
				got = r.URL.Query().Get("token")
			}
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
