// handlers содержит REST-хендлеры newsportal поверх сервисного слоя.
//
// Конвенции пакета:
//   - тела запросов парсятся строгим декодером (неизвестные поля — ошибка);
//   - ошибки парсинга/валидации транспорта -> service.ErrInvalidArgument;
//   - доменные ошибки отдаются без изменений в apierrors.WriteError,
//     маппинг на HTTP-коды централизован в internal/errors.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/http/middleware"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/service"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга запроса.
func errInvalidArgument() error {
	return service.ErrInvalidArgument
}

// identity достаёт личность из контекста; отсутствие — ошибка программирования
// (маршрут не обёрнут в RequireAuth), отвечаем 401.
func identity(r *http.Request) (*service.Identity, bool) {
	return middleware.IdentityFrom(r.Context())
}

// uuidParam парсит UUID-параметр пути.
func uuidParam(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, errInvalidArgument()
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidArgument()
	}

	return id, nil
}

// listOptions собирает limit/page_token из query-параметров.
func listOptions(r *http.Request) (models.ListOptions, error) {
	var opts models.ListOptions

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return opts, errInvalidArgument()
		}
		opts.Limit = int32(n)
	}

	opts.PageToken = r.URL.Query().Get("page_token")

	return opts, nil
}
