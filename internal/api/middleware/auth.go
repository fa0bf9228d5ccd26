package middleware

import (
	"context"
	"net/http"

	"github.com/ndemina/Salon-AdminService/internal/api/handlers"
)

type contextKey string

// AdminIDKey ключ контекста с идентификатором администратора
const AdminIDKey contextKey = "adminID"

// HeaderAdminID заголовок с идентификатором администратора панели
// Аутентификацию выполняет вышестоящий шлюз, сервис доверяет заголовку
const HeaderAdminID = "X-Admin-ID"

// Auth проверяет наличие заголовка X-Admin-ID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := r.Header.Get(HeaderAdminID)
		if adminID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-Admin-ID")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext возвращает идентификатор администратора из контекста
func AdminIDFromContext(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(AdminIDKey).(string)
	return adminID, ok
}
