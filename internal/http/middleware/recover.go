package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	logctx "github.com/RajivKhattri/newsportal/internal/pkg/log"
)

// Recover перехватывает panic обработчиков портала, конвертирует в
// 500/internal и пишет унифицированный ответ. Детали паники не утекают
// на клиент; паники провайдеров новостей гасятся раньше, в сервисе приёма.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).
						LogAttrs(r.Context(), slog.LevelError, "panic",
							slog.String("path", r.URL.Path),
							slog.Any("reason", rec),
						)
					apierrors.WriteError(w, r, fmt.Errorf("internal"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
