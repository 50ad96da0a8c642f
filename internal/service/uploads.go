package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// UploadURL генерирует presigned PUT для объекта заданного назначения.
// Назначение должно соответствовать роли вызывающего.
func (s *Service) UploadURL(ctx context.Context, ident *Identity, kind storage.UploadKind, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service/uploads/UploadURL"

	if err := checkUploadKindForRole(ident.Role, kind); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := s.documents.DocumentUploadURL(ctx, ident.UserID, kind, contentType, contentLength)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		case errors.Is(err, storage.ErrUnknownUploadKind):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmUpload подтверждает загрузку и фиксирует ключ объекта
// в профиле либо в статье (для обложек).
func (s *Service) ConfirmUpload(ctx context.Context, ident *Identity, kind storage.UploadKind, key string, articleID uuid.NullUUID) (publicURL string, err error) {
	const op = "service/uploads/ConfirmUpload"

	if err := checkUploadKindForRole(ident.Role, kind); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	publicURL, err = s.documents.CheckDocumentUpload(ctx, ident.UserID, kind, key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundObject):
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument), errors.Is(err, storage.ErrUnknownUploadKind):
			return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	switch kind {
	case storage.UploadKindArticleImage:
		if !articleID.Valid {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		if _, err := s.storage.ConfirmArticleImageUpload(ctx, articleID.UUID, ident.UserID, key); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return "", fmt.Errorf("%s: %w", op, err)
		}
	case storage.UploadKindProfilePicture:
		if _, err := s.storage.ConfirmPictureUpload(ctx, ident.UserID, key); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return "", fmt.Errorf("%s: %w", op, err)
		}
	default:
		// Сертификаты и подтверждающие документы хранятся в профиле.
		if _, err := s.storage.ConfirmDocumentUpload(ctx, ident.UserID, key); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			return "", fmt.Errorf("%s: %w", op, err)
		}
	}

	return publicURL, nil
}

// checkUploadKindForRole сопоставляет назначение загрузки и роль:
// сертификаты — авторам, подтверждающие документы — администраторам,
// обложки — авторам, изображения профиля — всем аутентифицированным.
func checkUploadKindForRole(role models.Role, kind storage.UploadKind) error {
	switch kind {
	case storage.UploadKindCertificate:
		if role != models.RoleAuthor {
			return ErrPermissionDenied
		}
	case storage.UploadKindApprovalDocument:
		if role != models.RoleAdmin {
			return ErrPermissionDenied
		}
	case storage.UploadKindArticleImage:
		if role != models.RoleAuthor && role != models.RoleAdmin {
			return ErrPermissionDenied
		}
	case storage.UploadKindProfilePicture:
		// Доступно всем аутентифицированным пользователям.
	default:
		return ErrInvalidArgument
	}

	return nil
}
