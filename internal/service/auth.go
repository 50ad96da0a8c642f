package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/pkg/redact"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// Credentials — общая часть регистрационных запросов всех ролей.
type Credentials struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

// RegisterReaderInput — регистрация читателя.
type RegisterReaderInput struct {
	Credentials
}

// RegisterAuthorInput — регистрация автора: биография и категории экспертизы.
type RegisterAuthorInput struct {
	Credentials
	Bio               string
	CategoryExpertise []string
}

// RegisterEditorInput — регистрация редактора: зоны ответственности
// и флаги управленческих полномочий.
type RegisterEditorInput struct {
	Credentials
	AreasOfOversight  string
	EmailVerification bool
	UserManagement    bool
	ArticleManagement bool
	Analytics         bool
}

// RegisterAdminInput — регистрация администратора.
// Подтверждающий документ загружается отдельным запросом после регистрации.
type RegisterAdminInput struct {
	Credentials
}

// RegisterResult — итог регистрации.
// TokenPair выдаётся только ролям, активным сразу (читатель);
// привилегированные роли ждут одобрения модерацией.
type RegisterResult struct {
	UserID         uuid.UUID
	Role           models.Role
	ApprovalStatus models.ApprovalStatus
	Tokens         *models.TokenPair
}

// RegisterReader регистрирует читателя. Читатели активны сразу.
func (s *Service) RegisterReader(ctx context.Context, input RegisterReaderInput) (*RegisterResult, error) {
	const op = "service/auth/RegisterReader"

	if err := s.validateCredentials(input.Credentials, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := &models.Profile{
		Role:           models.RoleUser,
		ApprovalStatus: models.ApprovalStatusApproved,
	}

	result, err := s.register(ctx, input.Credentials, models.RoleUser, profile, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RegisterAuthor регистрирует автора. Учётная запись неактивна до одобрения.
func (s *Service) RegisterAuthor(ctx context.Context, input RegisterAuthorInput) (*RegisterResult, error) {
	const op = "service/auth/RegisterAuthor"

	var expertise string

	extra := func(fields FieldErrors) {
		if strings.TrimSpace(input.Bio) == "" {
			fields.Add("bio", "bio is required for authors")
		}

		switch raw := firstNonEmpty(input.CategoryExpertise); raw {
		case "":
			fields.Add("category_expertise", "category expertise is required for authors")
		default:
			canonical, ok := models.CanonicalExpertiseCategory(raw)
			if !ok {
				fields.Add("category_expertise", "unknown expertise category")
			}
			expertise = canonical
		}
	}

	if err := s.validateCredentials(input.Credentials, extra); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := &models.Profile{
		Role:              models.RoleAuthor,
		Bio:               strings.TrimSpace(input.Bio),
		CategoryExpertise: expertise,
		ApprovalStatus:    models.ApprovalStatusPending,
	}

	result, err := s.register(ctx, input.Credentials, models.RoleAuthor, profile, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RegisterEditor регистрирует редактора. Учётная запись неактивна до одобрения.
func (s *Service) RegisterEditor(ctx context.Context, input RegisterEditorInput) (*RegisterResult, error) {
	const op = "service/auth/RegisterEditor"

	responsibilities := compactResponsibilities(input)

	extra := func(fields FieldErrors) {
		if strings.TrimSpace(input.AreasOfOversight) == "" {
			fields.Add("areas_of_oversight", "areas of oversight are required for editors")
		}

		if len(responsibilities) == 0 {
			fields.Add("management_responsibilities", "at least one management responsibility is required")
		}
	}

	if err := s.validateCredentials(input.Credentials, extra); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := &models.Profile{
		Role:                       models.RoleEditor,
		AreasOfOversight:           strings.TrimSpace(input.AreasOfOversight),
		ManagementResponsibilities: responsibilities,
		ApprovalStatus:             models.ApprovalStatusPending,
	}

	result, err := s.register(ctx, input.Credentials, models.RoleEditor, profile, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// RegisterAdmin регистрирует администратора. Учётная запись неактивна
// до одобрения; подтверждающий документ загружается после регистрации.
func (s *Service) RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*RegisterResult, error) {
	const op = "service/auth/RegisterAdmin"

	if err := s.validateCredentials(input.Credentials, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	profile := &models.Profile{
		Role:           models.RoleAdmin,
		ApprovalStatus: models.ApprovalStatusPending,
	}

	result, err := s.register(ctx, input.Credentials, models.RoleAdmin, profile, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// register — общий путь регистрации: учётная запись + профиль одной
// транзакцией, письмо подтверждения, токены для активных ролей.
func (s *Service) register(ctx context.Context, creds Credentials, role models.Role, profile *models.Profile, active bool) (*RegisterResult, error) {
	const op = "service/auth/register"

	lg := log.From(ctx)

	normEmail := strings.ToLower(strings.TrimSpace(creds.Email))
	username := strings.TrimSpace(creds.Username)

	if _, err := s.storage.AccountByEmail(ctx, normEmail); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.AccountByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        normEmail,
		Role:         role,
		PasswordHash: hashedPassword,
		IsActive:     active,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile.UserID = account.ID

	if err := s.storage.CreateAccountWithProfile(ctx, account, profile); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sendVerification(ctx, account); err != nil {
		// Регистрация уже состоялась: письмо можно запросить повторно.
		lg.Warn("verification_email_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(account.Email)),
			slog.String("err", err.Error()),
		)
	}

	result := &RegisterResult{
		UserID:         account.ID,
		Role:           role,
		ApprovalStatus: profile.ApprovalStatus,
	}

	if active {
		tokens, err := s.issueTokenPair(ctx, account, "")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.Tokens = tokens
	}

	lg.Info("account_registered",
		slog.String("op", op),
		slog.String("user_id", account.ID.String()),
		slog.String("role", string(role)),
		slog.String("email", redact.Email(account.Email)),
	)

	return result, nil
}

// Login выполняет вход по username или email + пароль.
// Неактивная учётная запись (ожидает одобрения либо отклонена) — ErrAccountInactive.
func (s *Service) Login(ctx context.Context, identifier, password string) (*models.TokenPair, *models.Account, error) {
	const op = "service/auth/Login"

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	var account *models.Account
	var err error
	if strings.Contains(identifier, "@") {
		account, err = s.storage.AccountByEmail(ctx, strings.ToLower(identifier))
	} else {
		account, err = s.storage.AccountByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(account.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if !account.IsActive {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrAccountInactive)
	}

	tokens, err := s.issueTokenPair(ctx, account, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, account, nil
}

// RefreshToken обновляет пару токенов по refresh-токену (ротация).
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service/auth/RefreshToken"

	token, err := s.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	account, err := s.storage.AccountByID(ctx, token.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !account.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrAccountInactive)
	}

	pair, err := s.issueTokenPair(ctx, account, hashRefreshToken(refreshToken))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// RevokeToken отзывает refresh-токен (logout).
func (s *Service) RevokeToken(ctx context.Context, refreshToken string) error {
	const op = "service/auth/RevokeToken"

	revoked, err := s.revokeRefreshHash(ctx, hashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !revoked {
		return fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	return nil
}

// ValidateToken проверяет access-токен и возвращает личность вызывающего.
func (s *Service) ValidateToken(ctx context.Context, accessToken string) (*Identity, error) {
	const op = "service/auth/ValidateToken"

	identity, err := s.validateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return identity, nil
}

// sendVerification создаёт токен подтверждения и отправляет письмо.
func (s *Service) sendVerification(ctx context.Context, account *models.Account) error {
	token := &models.EmailVerificationToken{
		Token:     uuid.New(),
		UserID:    account.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveVerificationToken(ctx, token); err != nil {
		return err
	}

	return s.mailer.SendVerificationEmail(ctx, account.Email, token.Token)
}

// ResendVerification повторно отправляет письмо подтверждения email.
// Уже подтверждённая учётная запись — ErrStateConflict.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	const op = "service/auth/ResendVerification"

	account, err := s.storage.AccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if account.IsVerified {
		return fmt.Errorf("%s: %w", op, ErrStateConflict)
	}

	if err := s.sendVerification(ctx, account); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// VerifyEmail подтверждает email по одноразовому токену.
func (s *Service) VerifyEmail(ctx context.Context, token uuid.UUID) error {
	const op = "service/auth/VerifyEmail"

	consumed, err := s.storage.ConsumeVerificationToken(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		case errors.Is(err, storage.ErrRevoked):
			return fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.MarkVerified(ctx, consumed.UserID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("email_verified",
		slog.String("op", op),
		slog.String("user_id", consumed.UserID.String()),
	)

	return nil
}

// RequestPasswordReset создаёт токен сброса и отправляет письмо.
// Несуществующий email не раскрывается: операция завершается без ошибки.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "service/auth/RequestPasswordReset"

	lg := log.From(ctx)

	account, err := s.storage.AccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Info("password_reset_unknown_email",
				slog.String("op", op),
				slog.String("email", redact.Email(email)),
			)
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	token := &models.PasswordResetToken{
		Token:     uuid.New(),
		UserID:    account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Auth.ResetTokenTTL),
	}

	if err := s.storage.SaveResetToken(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, account.Email, token.Token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ResetPassword устанавливает новый пароль по одноразовому токену сброса.
func (s *Service) ResetPassword(ctx context.Context, token uuid.UUID, password, passwordConfirm string) error {
	const op = "service/auth/ResetPassword"

	if password != passwordConfirm {
		fields := FieldErrors{}
		fields.Add("password2", "passwords do not match")
		return fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
	}

	if err := validatePassword(password); err != nil {
		fields := FieldErrors{}
		fields.Add("password", err.Error())
		return fmt.Errorf("%s: %w", op, &ValidationError{Fields: fields})
	}

	consumed, err := s.storage.ConsumeResetToken(ctx, token, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		case errors.Is(err, storage.ErrExpired):
			return fmt.Errorf("%s: %w", op, ErrTokenExpired)
		case errors.Is(err, storage.ErrRevoked):
			return fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdatePassword(ctx, consumed.UserID, hashed); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("password_reset",
		slog.String("op", op),
		slog.String("user_id", consumed.UserID.String()),
	)

	return nil
}

// validateCredentials проверяет общие поля регистрации и ролевые правила.
// Несовпадение паролей обрывает проверку сразу: остальные правила
// не оцениваются, клиент получает единственную ошибку password2.
func (s *Service) validateCredentials(creds Credentials, extra func(FieldErrors)) error {
	if creds.Password != creds.PasswordConfirm {
		fields := FieldErrors{}
		fields.Add("password2", "passwords do not match")
		return &ValidationError{Fields: fields}
	}

	fields := FieldErrors{}

	if strings.TrimSpace(creds.Username) == "" {
		fields.Add("username", "username is required")
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(creds.Email)); err != nil {
		fields.Add("email", "invalid email format")
	}

	if err := validatePassword(creds.Password); err != nil {
		fields.Add("password", err.Error())
	}

	if extra != nil {
		extra(fields)
	}

	if !fields.Empty() {
		return &ValidationError{Fields: fields}
	}

	return nil
}

// compactResponsibilities собирает включённые полномочия редактора
// в фиксированном порядке.
func compactResponsibilities(input RegisterEditorInput) []string {
	var out []string

	if input.EmailVerification {
		out = append(out, models.ResponsibilityEmailVerification)
	}
	if input.UserManagement {
		out = append(out, models.ResponsibilityUserManagement)
	}
	if input.ArticleManagement {
		out = append(out, models.ResponsibilityArticleManagement)
	}
	if input.Analytics {
		out = append(out, models.ResponsibilityAnalytics)
	}

	return out
}

// firstNonEmpty возвращает первый непустой элемент среза.
func firstNonEmpty(values []string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service/auth/hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика: длина >= 8, хотя бы одна строчная, заглавная и цифра.
func validatePassword(pw string) error {
	if len(pw) == 0 {
		return errors.New("password is empty")
	}

	if len([]rune(pw)) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !(hasLower && hasUpper && hasDigit) {
		return errors.New("password must contain lower, upper case letters and digits")
	}

	return nil
}
