// storage содержит контракты слоя хранилищ newsportal.
//
// accounts.go - учётные записи пользователей (Postgres).
// profiles.go - ролевые профили и модерация (Postgres).
// articles.go - авторские статьи и редакторский цикл (Postgres).
// interactions.go - реакции лайк/дизлайк (Postgres).
// news.go - внешние новости с дедупликацией по source_id (Postgres).
// tokens.go - refresh-токены, токены верификации и сброса пароля (Postgres).
// comments.go - комментарии к статьям (MongoDB).
// documents.go - загрузка документов и изображений (S3/MinIO, presigned PUT).
package storage

import "errors"

// Storage задает сводный контракт реляционного хранилища.
type Storage interface {
	Accounts
	Profiles
	RoleChanges
	Articles
	Interactions
	News
	RefreshTokens
	VerificationTokens
	ResetTokens
	Close()
}

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/username/source_id,
	// повторная pending-заявка на смену роли).
	ErrAlreadyExists = errors.New("already exists")
	// ErrExpired — сущность просрочена (refresh-token, reset-token).
	ErrExpired = errors.New("expired")
	// ErrRevoked — сущность отозвана (refresh-token).
	ErrRevoked = errors.New("revoked")
	// ErrStateConflict — операция недопустима в текущем статусе сущности.
	ErrStateConflict = errors.New("state conflict")
	// ErrInvalidCursor — некорректный токен пагинации.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер объекта).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFoundObject — объект (ключ) отсутствует в бакете.
	ErrNotFoundObject = errors.New("object not found")
)
