// http собирает REST-роутер newsportal: мидлвары, маршруты, группы доступа.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/RajivKhattri/newsportal/internal/http/handlers"
	"github.com/RajivKhattri/newsportal/internal/http/middleware"
	"github.com/RajivKhattri/newsportal/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики и гистограммы по маршрутам
		middleware.AuthBearer(svc),      // проверяем Bearer токен и кладём Identity в контекст
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// auth — публичные маршруты.
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.RefreshToken)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/verify-email", h.VerifyEmail)
	r.Post("/auth/verify-email/resend", h.ResendVerification)
	r.Post("/auth/password-reset", h.RequestPasswordReset)
	r.Post("/auth/password-reset/confirm", h.ResetPassword)

	// Публичное чтение.
	r.Get("/articles", h.ListArticles)
	r.Get("/articles/{id}", h.GetArticle)
	r.Get("/articles/{id}/comments", h.ListComments)
	r.Get("/news", h.ListNews)
	r.Get("/news/{id}", h.GetNewsByID)

	// Требуют аутентификации.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth())

		r.Get("/auth/me", h.Me)

		// Авторский цикл статей.
		r.Post("/articles", h.CreateArticle)
		r.Patch("/articles/{id}", h.UpdateArticle)
		r.Delete("/articles/{id}", h.DeleteArticle)
		r.Post("/articles/{id}/submit", h.SubmitArticle)
		r.Get("/articles/mine", h.MyArticles)

		// Реакции и комментарии.
		r.Post("/articles/{id}/interactions", h.ToggleInteraction)
		r.Post("/articles/{id}/comments", h.CreateComment)
		r.Delete("/comments/{id}", h.DeleteComment)

		// Профили и заявки на смену роли.
		r.Get("/users/{id}/profile", h.GetProfile)
		r.Post("/role-changes", h.RequestRoleChange)

		// Загрузки в объектное хранилище.
		r.Post("/uploads/presign", h.UploadPresign)
		r.Post("/uploads/confirm", h.UploadConfirm)

		// Приём внешних новостей по запросу.
		r.Post("/news/fetch", h.FetchNews)

		// Модерация: права проверяет сервисный слой.
		r.Get("/moderation/articles", h.ReviewQueue)
		r.Post("/moderation/articles/{id}/review", h.ReviewArticle)
		r.Get("/moderation/profiles", h.PendingProfiles)
		r.Post("/moderation/profiles/{id}/approve", h.ApproveProfile)
		r.Post("/moderation/profiles/{id}/reject", h.RejectProfile)
		r.Get("/moderation/role-changes", h.PendingRoleChanges)
		r.Post("/moderation/role-changes/{id}/approve", h.ApproveRoleChange)
		r.Post("/moderation/role-changes/{id}/reject", h.RejectRoleChange)
	})
}
