package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment — комментарий читателя к опубликованной статье (MongoDB).
//
// Особенности:
//   - ID — ObjectID MongoDB, наружу конвертируется в строку;
//   - ArticleID/UserID — UUID из Postgres;
//   - Username — снимок имени на момент создания (денормализация для выдачи);
//   - IsDeleted — мягкое удаление, при отдаче содержимое маскируется.
type Comment struct {
	ID        string
	ArticleID uuid.UUID
	UserID    uuid.UUID
	Username  string
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentPage — страница комментариев со ссылкой на продолжение.
type CommentPage struct {
	Items         []Comment
	NextPageToken string
}
