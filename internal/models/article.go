package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus — текущее состояние статьи в редакционном конвейере.
// Машина состояний: draft -> pending -> {approved, rejected}.
type ArticleStatus string

const (
	ArticleStatusDraft    ArticleStatus = "draft"
	ArticleStatusPending  ArticleStatus = "pending"
	ArticleStatusApproved ArticleStatus = "approved"
	ArticleStatusRejected ArticleStatus = "rejected"
)

// ParseArticleStatus возвращает статус по строковому значению.
func ParseArticleStatus(s string) (ArticleStatus, bool) {
	switch ArticleStatus(s) {
	case ArticleStatusDraft, ArticleStatusPending, ArticleStatusApproved, ArticleStatusRejected:
		return ArticleStatus(s), true
	default:
		return "", false
	}
}

// Article — статья, созданная автором портала.
//
// История статусов не хранится: только текущее значение Status.
// EditorComments — свободный комментарий редактора, видимый автору.
type Article struct {
	ID             uuid.UUID
	AuthorID       uuid.UUID
	Title          string
	Content        string
	Category       string
	ImageKey       string
	Status         ArticleStatus
	EditorComments string
	ReviewedBy     uuid.NullUUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
