package middleware

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/RajivKhattri/newsportal/internal/errors"
	"github.com/RajivKhattri/newsportal/internal/service"
)

type ctxKeyIdentity struct{}

// TokenValidator проверяет access-токен и возвращает личность пользователя.
// Реализуется сервисным слоем (service.Service.ValidateToken).
type TokenValidator interface {
	ValidateToken(ctx context.Context, accessToken string) (*service.Identity, error)
}

// AuthBearer извлекает Bearer-токен из Authorization, проверяет его
// и кладёт *service.Identity в контекст.
//
// Поведение:
//   - заголовка нет -> запрос идёт дальше анонимно (решает RequireAuth);
//   - заголовок есть, но токен невалиден/просрочен -> 401 сразу:
//     явная ошибка лучше тихой деградации до анонима.
func AuthBearer(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) || len(auth) == len(prefix) {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			ident, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity{}, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth пропускает дальше только аутентифицированные запросы.
// Вешается на защищённые группы маршрутов после AuthBearer.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFrom(r.Context()); !ok {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom достаёт личность пользователя из контекста запроса.
func IdentityFrom(ctx context.Context) (*service.Identity, bool) {
	ident, ok := ctx.Value(ctxKeyIdentity{}).(*service.Identity)
	return ident, ok && ident != nil
}
