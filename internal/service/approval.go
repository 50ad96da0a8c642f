package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// ProfileByUser возвращает профиль пользователя.
// Чужой профиль доступен только модераторам.
func (s *Service) ProfileByUser(ctx context.Context, ident *Identity, userID uuid.UUID) (*models.Profile, error) {
	const op = "service/approval/ProfileByUser"

	if ident.UserID != userID {
		if err := s.requireUserModeration(ctx, ident); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	profile, err := s.storage.ProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

// PendingProfiles возвращает страницу профилей, ожидающих модерации.
func (s *Service) PendingProfiles(ctx context.Context, ident *Identity, opts models.ListOptions) ([]models.Profile, string, error) {
	const op = "service/approval/PendingProfiles"

	if err := s.requireUserModeration(ctx, ident); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	opts.Limit = s.limitOrDefault(opts.Limit)

	items, next, err := s.storage.ListPendingProfiles(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return items, next, nil
}

// ApproveProfile одобряет профиль и активирует учётную запись.
// Повторное одобрение идемпотентно.
func (s *Service) ApproveProfile(ctx context.Context, ident *Identity, userID uuid.UUID) (*models.Profile, error) {
	const op = "service/approval/ApproveProfile"

	if err := s.requireUserModeration(ctx, ident); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.storage.ProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Администратор без загруженного подтверждающего документа не одобряется.
	if current.Role == models.RoleAdmin && current.DocumentKey == "" {
		return nil, fmt.Errorf("%s: approval document missing: %w", op, ErrStateConflict)
	}

	profile, err := s.storage.ApproveProfile(ctx, userID, ident.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("profile_approved",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("approved_by", ident.UserID.String()),
	)

	return profile, nil
}

// RejectProfile отклоняет профиль с комментарием и деактивирует учётную запись.
func (s *Service) RejectProfile(ctx context.Context, ident *Identity, userID uuid.UUID, comment string) (*models.Profile, error) {
	const op = "service/approval/RejectProfile"

	if err := s.requireUserModeration(ctx, ident); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(comment) == "" {
		fields := FieldErrors{}
		fields.Add("comment", "rejection comment is required")
		return nil, fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
	}

	profile, err := s.storage.RejectProfile(ctx, userID, ident.UserID, strings.TrimSpace(comment))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("profile_rejected",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("rejected_by", ident.UserID.String()),
	)

	return profile, nil
}

// RequestRoleChange создаёт заявку на смену роли текущего пользователя.
// Заявка на текущую роль или роль читателя — ErrInvalidArgument.
func (s *Service) RequestRoleChange(ctx context.Context, ident *Identity, requested models.Role) (*models.RoleChangeRequest, error) {
	const op = "service/approval/RequestRoleChange"

	if !requested.Privileged() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	account, err := s.storage.AccountByID(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if account.Role == requested {
		return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
	}

	req := &models.RoleChangeRequest{
		ID:            uuid.New(),
		UserID:        ident.UserID,
		RequestedRole: requested,
		Status:        models.ApprovalStatusPending,
		RequestedAt:   time.Now().UTC(),
	}

	if err := s.storage.CreateRoleChange(ctx, req); err != nil {
		// Повторная заявка при живой pending-заявке.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("role_change_requested",
		slog.String("op", op),
		slog.String("user_id", ident.UserID.String()),
		slog.String("requested_role", string(requested)),
	)

	return req, nil
}

// PendingRoleChanges возвращает страницу заявок на смену роли.
func (s *Service) PendingRoleChanges(ctx context.Context, ident *Identity, opts models.ListOptions) ([]models.RoleChangeRequest, string, error) {
	const op = "service/approval/PendingRoleChanges"

	if err := s.requireUserModeration(ctx, ident); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	opts.Limit = s.limitOrDefault(opts.Limit)

	items, next, err := s.storage.ListPendingRoleChanges(ctx, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			return nil, "", fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	return items, next, nil
}

// ApproveRoleChange одобряет заявку: роль учётной записи меняется,
// профиль новой роли создаётся в статусе pending и проходит модерацию заново.
func (s *Service) ApproveRoleChange(ctx context.Context, ident *Identity, id uuid.UUID) (*models.RoleChangeRequest, error) {
	const op = "service/approval/ApproveRoleChange"

	if err := s.requireUserModeration(ctx, ident); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := s.storage.RoleChangeByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	seed := &models.Profile{
		UserID:         req.UserID,
		Role:           req.RequestedRole,
		ApprovalStatus: models.ApprovalStatusPending,
	}

	decided, err := s.storage.ApproveRoleChange(ctx, id, ident.UserID, seed)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStateConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("role_change_approved",
		slog.String("op", op),
		slog.String("request_id", id.String()),
		slog.String("user_id", decided.UserID.String()),
		slog.String("new_role", string(decided.RequestedRole)),
	)

	return decided, nil
}

// RejectRoleChange отклоняет заявку с комментарием.
func (s *Service) RejectRoleChange(ctx context.Context, ident *Identity, id uuid.UUID, comment string) (*models.RoleChangeRequest, error) {
	const op = "service/approval/RejectRoleChange"

	if err := s.requireUserModeration(ctx, ident); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	decided, err := s.storage.RejectRoleChange(ctx, id, ident.UserID, strings.TrimSpace(comment))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrStateConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return decided, nil
}

// requireUserModeration проверяет право модерировать пользователей:
// администратор, либо одобренный редактор с полномочием user_management.
func (s *Service) requireUserModeration(ctx context.Context, ident *Identity) error {
	if ident.Role == models.RoleAdmin {
		return nil
	}

	if ident.Role != models.RoleEditor {
		return ErrPermissionDenied
	}

	profile, err := s.storage.ProfileByUserID(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPermissionDenied
		}

		return err
	}

	if profile.ApprovalStatus != models.ApprovalStatusApproved {
		return ErrPermissionDenied
	}

	for _, r := range profile.ManagementResponsibilities {
		if r == models.ResponsibilityUserManagement {
			return nil
		}
	}

	return ErrPermissionDenied
}
