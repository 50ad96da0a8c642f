package models

import (
	"time"

	"github.com/google/uuid"
)

// InteractionAction — действие читателя над статьёй.
type InteractionAction string

const (
	InteractionLike    InteractionAction = "like"
	InteractionDislike InteractionAction = "dislike"
)

// ParseInteractionAction возвращает действие по строковому значению.
func ParseInteractionAction(s string) (InteractionAction, bool) {
	switch InteractionAction(s) {
	case InteractionLike, InteractionDislike:
		return InteractionAction(s), true
	default:
		return "", false
	}
}

// Interaction — реакция пользователя на статью.
//
// Инварианты:
//   - не более одной записи на пару (ArticleID, UserID);
//   - Liked и Disliked взаимоисключающие: оба true невозможны.
type Interaction struct {
	ArticleID uuid.UUID
	UserID    uuid.UUID
	Liked     bool
	Disliked  bool
	UpdatedAt time.Time
}
