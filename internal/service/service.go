// service содержит бизнес-логику newsportal:
// регистрацию и аутентификацию по ролям, модерацию профилей,
// редакторский цикл статей, реакции, комментарии и приём внешних новостей.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-коды
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/RajivKhattri/newsportal/internal/cache"
	"github.com/RajivKhattri/newsportal/internal/config"
	"github.com/RajivKhattri/newsportal/internal/mailer"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive — учётная запись ещё не одобрена либо отклонена модерацией.
	// Транспорт: HTTP 403.
	ErrAccountInactive = errors.New("account inactive")

	// ErrInvalidToken — токен (access/refresh/verification/reset) некорректен
	// по формату/подписи или отсутствует в хранилище. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен отозван либо уже использован. Транспорт: HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrEmailTaken — e-mail уже занят другим пользователем. Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUsernameTaken — username уже занят. Транспорт: HTTP 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrRefreshTokenCollision — исчерпаны попытки сгенерировать уникальный
	// refresh-токен. Транспорт: HTTP 500.
	ErrRefreshTokenCollision = errors.New("refresh token collision")

	// ErrNotFound — запрошенная сущность не найдена. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied — у пользователя нет прав на операцию. Транспорт: HTTP 403.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrStateConflict — операция недопустима в текущем статусе сущности.
	// Транспорт: HTTP 400 с кодом state_conflict.
	ErrStateConflict = errors.New("state conflict")

	// ErrInvalidCursor — некорректный page_token. Транспорт: HTTP 400.
	ErrInvalidCursor = errors.New("invalid page token")

	// ErrInvalidArgument — запрос нарушает ограничения (тип/размер/формат).
	// Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldErrors — ошибки валидации, сгруппированные по полям запроса.
// Порядок полей в Error() детерминирован для стабильных логов и тестов.
type FieldErrors map[string][]string

// Add добавляет сообщение к полю.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Empty сообщает, накоплены ли ошибки.
func (f FieldErrors) Empty() bool { return len(f) == 0 }

// ValidationError агрегирует пополевые ошибки валидации запроса.
// Транспорт: HTTP 400 с кодом validation_failed и картой fields.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], "; ")))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Service описывает бизнес-логику newsportal.
type Service struct {
	storage   storage.Storage
	comments  storage.Comments
	documents storage.Documents
	mailer    mailer.Mailer
	cfg       *config.Config
	rcache    cache.RefreshCache // может быть nil, если кэш не сконфигурирован

	providersMu sync.RWMutex
	providers   []Provider

	// ingestBusy сериализует проходы приёма: тикер и ручной запуск
	// не выполняются одновременно.
	ingestBusy atomic.Bool
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, comments storage.Comments, documents storage.Documents, m mailer.Mailer, cfg *config.Config) *Service {
	return &Service{
		storage:   st,
		comments:  comments,
		documents: documents,
		mailer:    m,
		cfg:       cfg,
	}
}

// SetRefreshCache устанавливает кэш refresh-токенов (опционально).
func (s *Service) SetRefreshCache(c cache.RefreshCache) {
	s.rcache = c
}

func (s *Service) setProviders(providers []Provider) {
	s.providersMu.Lock()
	s.providers = providers
	s.providersMu.Unlock()
}

func (s *Service) loadProviders() []Provider {
	s.providersMu.RLock()
	defer s.providersMu.RUnlock()

	return s.providers
}

// limitOrDefault приводит запрошенный размер страницы к [Default, Max].
func (s *Service) limitOrDefault(limit int32) int32 {
	if limit <= 0 {
		return s.cfg.Limits.Default
	}

	if limit > s.cfg.Limits.Max {
		return s.cfg.Limits.Max
	}

	return limit
}
