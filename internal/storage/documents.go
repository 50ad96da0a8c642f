package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UploadKind — назначение загружаемого объекта; определяет префикс ключа в бакете.
type UploadKind string

const (
	// UploadKindCertificate — сертификат автора.
	UploadKindCertificate UploadKind = "certificate"
	// UploadKindApprovalDocument — подтверждающий документ администратора.
	UploadKindApprovalDocument UploadKind = "approval-document"
	// UploadKindProfilePicture — изображение профиля.
	UploadKindProfilePicture UploadKind = "picture"
	// UploadKindArticleImage — обложка статьи.
	UploadKindArticleImage UploadKind = "article-image"
)

// ErrUnknownUploadKind — назначение загрузки не поддерживается.
var ErrUnknownUploadKind = errors.New("unknown upload kind")

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечная URL для PUT-запроса.
//   - Key: ключ (путь) будущего объекта в бакете.
//   - Expires: время жизни подписи.
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT (например Content-Type).
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Documents — контракт генерации presigned URL и подтверждения факта загрузки.
type Documents interface {
	// DocumentUploadURL генерирует presigned PUT для объекта заданного назначения.
	// Внутри — валидация contentType и contentLength.
	DocumentUploadURL(ctx context.Context, ownerID uuid.UUID, kind UploadKind, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckDocumentUpload проверяет факт загрузки по key (наличие, тип, размер).
	// Возвращает публичный URL (если сконфигурирован PublicBaseURL).
	CheckDocumentUpload(ctx context.Context, ownerID uuid.UUID, kind UploadKind, key string) (publicURL string, err error)
}
