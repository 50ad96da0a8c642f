// errors стандартизирует ответы об ошибках HTTP-слоя newsportal.
// На вход он принимает доменную ошибку сервисного слоя,
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей;
//   - для ошибок валидации — карту fields по полям запроса.
//
// Источник истинности по маппингу: комментарии к переменным ошибок
// в пакете service.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RajivKhattri/newsportal/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// Fields — пополевые ошибки валидации (только для validation_failed).
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string              `json:"code"`
	Message   string              `json:"message"`
	Fields    map[string][]string `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - *service.ValidationError — 400/validation_failed с картой fields;
//   - известные sentinel-ошибки service — по таблице ниже;
//   - прочее — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{Code: "internal", Message: "internal error"},
		}
	}

	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "validation_failed",
				Message: "validation failed",
				Fields:  vErr.Fields,
			},
		}
	}

	status, code, msg := baseFromServiceErr(err)

	return status, ErrorResponse{Error: APIError{Code: code, Message: msg}}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// baseFromServiceErr — базовый маппинг доменных ошибок -> HTTP/FE-код/сообщение.
//   - некорректные данные/курсор -> 400
//   - недопустимый статус сущности -> 400/state_conflict
//   - ошибки аутентификации (credentials/token) -> 401
//   - неактивная учётная запись и нехватка прав -> 403
//   - отсутствующая сущность -> 404
//   - конфликты уникальности -> 409
//   - Canceled -> 499 (клиент закрыл соединение)
//   - DeadlineExceeded -> 504 (таймаут запроса)
//   - прочее -> 500/internal
func baseFromServiceErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrInvalidCursor):
		return http.StatusBadRequest, "invalid_page_token", "invalid page token"
	case errors.Is(err, service.ErrStateConflict):
		return http.StatusBadRequest, "state_conflict", "operation not allowed in current state"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials", "invalid credentials"
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token", "invalid token"
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired", "token expired"
	case errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, "token_revoked", "token revoked"
	case errors.Is(err, service.ErrAccountInactive):
		return http.StatusForbidden, "account_inactive", "account is awaiting approval or was rejected"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied", "permission denied"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict, "email_taken", "email already taken"
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, "username_taken", "username already taken"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
