package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

const roleChangeColumns = `
id, user_id, requested_role, status, admin_comment, requested_at, decided_at, decided_by
`

func scanRoleChange(row pgx.Row) (*models.RoleChangeRequest, error) {
	var req models.RoleChangeRequest
	var role, status string

	if err := row.Scan(
		&req.ID,
		&req.UserID,
		&role,
		&status,
		&req.AdminComment,
		&req.RequestedAt,
		&req.DecidedAt,
		&req.DecidedBy,
	); err != nil {
		return nil, err
	}

	req.RequestedRole = models.Role(role)
	req.Status = models.ApprovalStatus(status)
	req.RequestedAt = req.RequestedAt.UTC()
	if req.DecidedAt != nil {
		t := req.DecidedAt.UTC()
		req.DecidedAt = &t
	}

	return &req, nil
}

// CreateRoleChange создаёт новую заявку на смену роли.
// Вторая pending-заявка того же пользователя — storage.ErrAlreadyExists.
func (s *Storage) CreateRoleChange(ctx context.Context, req *models.RoleChangeRequest) error {
	const op = "storage/postgres/role_changes/CreateRoleChange"

	q := `
	INSERT INTO role_change_requests (id, user_id, requested_role, status, admin_comment, requested_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, q,
		req.ID,
		req.UserID,
		string(req.RequestedRole),
		string(req.Status),
		req.AdminComment,
		req.RequestedAt.UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RoleChangeByID возвращает заявку по ID.
func (s *Storage) RoleChangeByID(ctx context.Context, id uuid.UUID) (*models.RoleChangeRequest, error) {
	const op = "storage/postgres/role_changes/RoleChangeByID"

	q := `SELECT ` + roleChangeColumns + ` FROM role_change_requests WHERE id = $1`

	req, err := scanRoleChange(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return req, nil
}

// ListPendingRoleChanges возвращает страницу заявок в статусе pending,
// старые первыми. При некорректном токене — storage.ErrInvalidCursor.
func (s *Storage) ListPendingRoleChanges(ctx context.Context, opts models.ListOptions) ([]models.RoleChangeRequest, string, error) {
	const op = "storage/postgres/role_changes/ListPendingRoleChanges"

	limit := normalizeLimit(opts.Limit)

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT `+roleChangeColumns+`
		FROM role_change_requests
		WHERE status = 'pending'
		ORDER BY requested_at ASC, id ASC
		LIMIT $1
		`, limit)
	} else {
		reqCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, "", fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT `+roleChangeColumns+`
		FROM role_change_requests
		WHERE status = 'pending' AND (requested_at, id) > ($1, $2)
		ORDER BY requested_at ASC, id ASC
		LIMIT $3
		`, reqCur, idCur, limit)
	}

	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.RoleChangeRequest
	for rows.Next() {
		req, scanErr := scanRoleChange(rows)
		if scanErr != nil {
			return nil, "", fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *req)
	}

	if rows.Err() != nil {
		return nil, "", fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	var next string
	if l := len(items); l > 0 {
		last := items[l-1]
		next = encodePageToken(last.RequestedAt, last.ID)
	}

	return items, next, nil
}

// ApproveRoleChange атомарно одобряет заявку, меняет роль учётной записи
// и создаёт seed-профиль новой роли в статусе pending.
// Заявка не в статусе pending — storage.ErrStateConflict.
func (s *Storage) ApproveRoleChange(ctx context.Context, id, decidedBy uuid.UUID, seed *models.Profile) (*models.RoleChangeRequest, error) {
	const op = "storage/postgres/role_changes/ApproveRoleChange"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := s.decideRoleChange(ctx, op, tx, id, decidedBy, models.ApprovalStatusApproved, "")
	if err != nil {
		return nil, err
	}

	// Привилегированная роль неактивна до одобрения нового профиля,
	// как и при регистрации.
	if _, err := tx.Exec(ctx, `
	UPDATE accounts SET role = $2, is_active = FALSE, updated_at = now() WHERE id = $1
	`, req.UserID, string(req.RequestedRole)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Старый профиль заменяется seed-профилем новой роли: пользователь
	// проходит модерацию заново уже в новой роли.
	if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, req.UserID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := insertProfile(ctx, tx, seed); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return req, nil
}

// RejectRoleChange отклоняет заявку с комментарием.
func (s *Storage) RejectRoleChange(ctx context.Context, id, decidedBy uuid.UUID, comment string) (*models.RoleChangeRequest, error) {
	const op = "storage/postgres/role_changes/RejectRoleChange"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	req, err := s.decideRoleChange(ctx, op, tx, id, decidedBy, models.ApprovalStatusRejected, comment)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return req, nil
}

// decideRoleChange переводит pending-заявку в конечный статус внутри транзакции.
func (s *Storage) decideRoleChange(ctx context.Context, op string, tx pgx.Tx, id, decidedBy uuid.UUID, status models.ApprovalStatus, comment string) (*models.RoleChangeRequest, error) {
	q := `
	UPDATE role_change_requests
	SET status = $2, admin_comment = $3, decided_at = now(), decided_by = $4
	WHERE id = $1 AND status = 'pending'
	RETURNING ` + roleChangeColumns

	req, err := scanRoleChange(tx.QueryRow(ctx, q, id, string(status), comment, decidedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Либо заявки нет, либо она уже решена.
			if _, exErr := s.RoleChangeByID(ctx, id); exErr != nil {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}

			return nil, fmt.Errorf("%s: %w", op, storage.ErrStateConflict)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return req, nil
}
