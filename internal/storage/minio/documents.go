package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/RajivKhattri/newsportal/internal/storage"
)

// kindPrefix возвращает префикс ключа в бакете для назначения загрузки.
func kindPrefix(kind storage.UploadKind) (string, error) {
	switch kind {
	case storage.UploadKindCertificate:
		return "certificates", nil
	case storage.UploadKindApprovalDocument:
		return "approval-documents", nil
	case storage.UploadKindProfilePicture:
		return "pictures", nil
	case storage.UploadKindArticleImage:
		return "article-images", nil
	default:
		return "", storage.ErrUnknownUploadKind
	}
}

// DocumentUploadURL генерирует presigned PUT URL для загрузки объекта.
// Валидирует contentType и contentLength согласно конфигу, формирует ключ вида
// "<prefix>/<ownerID>/<uuid>.<ext>" и возвращает набор заголовков,
// которые клиент должен передать при PUT (проверяются при подтверждении).
func (s *DocumentsStorage) DocumentUploadURL(ctx context.Context, ownerID uuid.UUID, kind storage.UploadKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/documents/DocumentUploadURL"

	prefix, err := kindPrefix(kind)
	if err != nil {
		return nil, err
	}

	if contentLength <= 0 || contentLength > s.cfg.Uploads.MaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Uploads.AllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	var ext string
	switch contentType {
	case "application/pdf":
		ext = ".pdf"
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		ext = ""
	}

	key := path.Join(prefix, ownerID.String(), uuid.NewString()+ext)

	u, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckDocumentUpload подтверждает факт загрузки по key:
// проверяет, что объект существует и удовлетворяет ограничениям размера/типа.
// Возвращает публичный URL (если PublicBaseURL задан), иначе — пустую строку.
func (s *DocumentsStorage) CheckDocumentUpload(ctx context.Context, ownerID uuid.UUID, kind storage.UploadKind, key string) (publicURL string, err error) {
	const op = "storage/minio/documents/CheckDocumentUpload"

	prefix, err := kindPrefix(kind)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(key, prefix+"/"+ownerID.String()+"/") {
		return "", storage.ErrInvalidArgument
	}

	objInfo, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", storage.ErrNotFoundObject
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > s.cfg.Uploads.MaxSizeBytes {
		return "", storage.ErrInvalidArgument
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(s.cfg.Uploads.AllowedContentTypes, ct) {
		return "", storage.ErrInvalidArgument
	}

	if s.cfg.S3.PublicBaseURL == "" {
		return "", nil
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/")

	return base + "/" + key, nil
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
