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

// profileColumns — единый список колонок таблицы profiles,
// используемый в SELECT/RETURNING для одинакового порядка сканирования.
const profileColumns = `
user_id, role, bio, category_expertise, certificate_key, areas_of_oversight,
management_responsibilities, document_key, picture_key,
approval_status, approval_comment, approved_by, created_at, updated_at
`

// scanProfile сканирует одну строку профиля в доменную модель.
func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile
	var role, status string

	if err := row.Scan(
		&profile.UserID,
		&role,
		&profile.Bio,
		&profile.CategoryExpertise,
		&profile.CertificateKey,
		&profile.AreasOfOversight,
		&profile.ManagementResponsibilities,
		&profile.DocumentKey,
		&profile.PictureKey,
		&status,
		&profile.ApprovalComment,
		&profile.ApprovedBy,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}

	profile.Role = models.Role(role)
	profile.ApprovalStatus = models.ApprovalStatus(status)
	profile.CreatedAt = profile.CreatedAt.UTC()
	profile.UpdatedAt = profile.UpdatedAt.UTC()

	return &profile, nil
}

// insertProfile вставляет профиль внутри переданного соединения/транзакции.
func insertProfile(ctx context.Context, tx pgx.Tx, profile *models.Profile) error {
	q := `
	INSERT INTO profiles (user_id, role, bio, category_expertise, certificate_key,
		areas_of_oversight, management_responsibilities, document_key, picture_key,
		approval_status, approval_comment, approved_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := tx.Exec(ctx, q,
		profile.UserID,
		string(profile.Role),
		profile.Bio,
		profile.CategoryExpertise,
		profile.CertificateKey,
		profile.AreasOfOversight,
		profile.ManagementResponsibilities,
		profile.DocumentKey,
		profile.PictureKey,
		string(profile.ApprovalStatus),
		profile.ApprovalComment,
		profile.ApprovedBy,
	)

	return err
}

// CreateAccountWithProfile атомарно создаёт учётную запись и её ролевой профиль.
// Ошибки: storage.ErrAlreadyExists при конфликте уникальности email/username.
func (s *Storage) CreateAccountWithProfile(ctx context.Context, account *models.Account, profile *models.Profile) error {
	const op = "storage/postgres/profiles/CreateAccountWithProfile"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
	INSERT INTO accounts (id, username, email, role, password_hash, is_active, is_verified)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = tx.Exec(ctx, q,
		account.ID,
		account.Username,
		account.Email,
		string(account.Role),
		account.PasswordHash,
		account.IsActive,
		account.IsVerified,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := insertProfile(ctx, tx, profile); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// ProfileByUserID возвращает профиль по user_id.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) ProfileByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ProfileByUserID"

	q := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	profile, err := scanProfile(s.db.QueryRow(ctx, q, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

// ListPendingProfiles возвращает страницу профилей в статусе pending
// с курсорной пагинацией. Сортировка фиксирована: created_at ASC, user_id ASC —
// старые заявки первыми. При некорректном токене — storage.ErrInvalidCursor.
func (s *Storage) ListPendingProfiles(ctx context.Context, opts models.ListOptions) ([]models.Profile, string, error) {
	const op = "storage/postgres/profiles/ListPendingProfiles"

	limit := normalizeLimit(opts.Limit)

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = s.db.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE approval_status = 'pending'
		ORDER BY created_at ASC, user_id ASC
		LIMIT $1
		`, limit)
	} else {
		createdCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, "", fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = s.db.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE approval_status = 'pending' AND (created_at, user_id) > ($1, $2)
		ORDER BY created_at ASC, user_id ASC
		LIMIT $3
		`, createdCur, idCur, limit)
	}

	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Profile
	for rows.Next() {
		profile, scanErr := scanProfile(rows)
		if scanErr != nil {
			return nil, "", fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *profile)
	}

	if rows.Err() != nil {
		return nil, "", fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	var next string
	if l := len(items); l > 0 {
		last := items[l-1]
		next = encodePageToken(last.CreatedAt, last.UserID)
	}

	return items, next, nil
}

// ApproveProfile атомарно переводит профиль в approved и активирует учётную запись.
// Повторный вызов идемпотентен.
func (s *Storage) ApproveProfile(ctx context.Context, userID, approvedBy uuid.UUID) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ApproveProfile"

	return s.decideProfile(ctx, op, userID, approvedBy, models.ApprovalStatusApproved, "", true)
}

// RejectProfile атомарно переводит профиль в rejected и деактивирует учётную запись.
func (s *Storage) RejectProfile(ctx context.Context, userID, rejectedBy uuid.UUID, comment string) (*models.Profile, error) {
	const op = "storage/postgres/profiles/RejectProfile"

	return s.decideProfile(ctx, op, userID, rejectedBy, models.ApprovalStatusRejected, comment, false)
}

// decideProfile — общая транзакция решения по профилю:
// статус и комментарий в profiles, is_active в accounts.
func (s *Storage) decideProfile(ctx context.Context, op string, userID, decidedBy uuid.UUID, status models.ApprovalStatus, comment string, active bool) (*models.Profile, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := `
	UPDATE profiles
	SET approval_status = $2, approval_comment = $3, approved_by = $4, updated_at = now()
	WHERE user_id = $1
	RETURNING ` + profileColumns

	profile, err := scanProfile(tx.QueryRow(ctx, q, userID, string(status), comment, decidedBy))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, `
	UPDATE accounts SET is_active = $2, updated_at = now() WHERE id = $1
	`, userID, active); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return profile, nil
}

// ConfirmDocumentUpload фиксирует ключ подтверждающего документа в профиле.
func (s *Storage) ConfirmDocumentUpload(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ConfirmDocumentUpload"

	return s.confirmProfileKey(ctx, op, userID, "document_key", key)
}

// ConfirmPictureUpload фиксирует ключ изображения профиля.
func (s *Storage) ConfirmPictureUpload(ctx context.Context, userID uuid.UUID, key string) (*models.Profile, error) {
	const op = "storage/postgres/profiles/ConfirmPictureUpload"

	return s.confirmProfileKey(ctx, op, userID, "picture_key", key)
}

func (s *Storage) confirmProfileKey(ctx context.Context, op string, userID uuid.UUID, column, key string) (*models.Profile, error) {
	q := `
	UPDATE profiles
	SET ` + column + ` = $2, updated_at = now()
	WHERE user_id = $1
	RETURNING ` + profileColumns

	profile, err := scanProfile(s.db.QueryRow(ctx, q, userID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}
