package models

import (
	"time"

	"github.com/google/uuid"
)

// FetchedNews — новость, полученная из внешнего источника.
//
// Особенности:
//   - SourceID — глобально уникальный ключ дедупликации: идентификатор
//     провайдера либо детерминированный отпечаток link+pubDate;
//   - PublishedAt/FetchedAt — в UTC.
type FetchedNews struct {
	ID          uuid.UUID
	SourceID    string
	Title       string
	Summary     string
	Content     string
	SourceURL   string
	ImageURL    string
	Category    string
	PublishedAt time.Time
	FetchedAt   time.Time
}

// ListOptions — параметры выборки списков доменных сущностей.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig);
//   - PageToken == "" -> первая страница.
type ListOptions struct {
	Limit     int32
	PageToken string
}
