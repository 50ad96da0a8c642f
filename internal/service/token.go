package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/RajivKhattri/newsportal/internal/cache"
	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/pkg/log"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// Claims — полезная нагрузка access-токена.
// Роль включается в токен: авторизация на транспорте не ходит в БД.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity — проверенная личность вызывающего.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     models.Role
}

// generateAccessToken генерирует access-токен.
func (s *Service) generateAccessToken(ctx context.Context, account *models.Account, now time.Time) (string, error) {
	const op = "service/token/generateAccessToken"

	lg := log.From(ctx)

	claims := Claims{
		UserID:   account.ID.String(),
		Username: account.Username,
		Role:     string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Auth.Issuer,
			Subject:   account.ID.String(),
			Audience:  jwt.ClaimStrings(s.cfg.Auth.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// validateAccessToken валидирует access-токен и возвращает личность вызывающего.
func (s *Service) validateAccessToken(tokenStr string) (*Identity, error) {
	const op = "service/token/validateAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.Auth.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Auth.Issuer),
		jwt.WithAudience(s.cfg.Auth.Audience...),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	role, ok := models.ParseRole(claims.Role)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return &Identity{UserID: uid, Username: claims.Username, Role: role}, nil
}

// hashRefreshToken возвращает хэш refresh-токена для хранения и поиска.
func hashRefreshToken(plain string) string {
	hashBytes := sha256.Sum256([]byte(plain))

	return base64.RawURLEncoding.EncodeToString(hashBytes[:])
}

// generateRefreshToken создает новый refresh-токен и прогревает кэш.
func (s *Service) generateRefreshToken(ctx context.Context, account *models.Account) (string, error) {
	const (
		op          = "service/token/generateRefreshToken"
		maxAttempts = 5
	)

	lg := log.From(ctx)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			lg.Error("refresh_rand_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}
		plain := base64.RawURLEncoding.EncodeToString(b)
		hash := hashRefreshToken(plain)

		now := time.Now().UTC()
		token := &models.RefreshToken{
			RefreshTokenHash: hash,
			UserID:           account.ID,
			CreatedAt:        now,
			ExpiresAt:        now.Add(s.cfg.Auth.RefreshTokenTTL),
			Revoked:          false,
		}

		if err := s.storage.SaveRefreshToken(ctx, token); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				// Редкая коллизия — пробуем сгенерировать заново.
				continue
			}

			lg.Error("save_refresh_token_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return "", fmt.Errorf("%s: %w", op, err)
		}

		if s.rcache != nil {
			entry := &cache.RefreshEntry{
				UserID:    account.ID,
				Role:      account.Role,
				Revoked:   false,
				ExpiresAt: token.ExpiresAt,
			}
			if err := s.rcache.Set(ctx, hash, entry, s.cfg.Auth.RefreshTokenTTL); err != nil {
				lg.Warn("refresh_cache_set_failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}

		return plain, nil
	}

	lg.Error("refresh_collision_exceeded", slog.String("op", op))

	return "", fmt.Errorf("%s: %w", op, ErrRefreshTokenCollision)
}

// validateRefreshToken валидирует refresh-токен: сперва кэш, затем БД.
func (s *Service) validateRefreshToken(ctx context.Context, plain string) (*models.RefreshToken, error) {
	const op = "service/token/validateRefreshToken"

	lg := log.From(ctx)
	hash := hashRefreshToken(plain)
	now := time.Now().UTC()

	if s.rcache != nil {
		if entry, ok, err := s.rcache.Get(ctx, hash); err == nil && ok {
			if entry.Revoked {
				return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
			}

			if now.After(entry.ExpiresAt) {
				return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
			}

			return &models.RefreshToken{
				RefreshTokenHash: hash,
				UserID:           entry.UserID,
				ExpiresAt:        entry.ExpiresAt,
			}, nil
		} else if err != nil {
			lg.Warn("refresh_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	token, err := s.storage.RefreshTokenByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_lookup_not_found", slog.String("op", op))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		lg.Error("refresh_lookup_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if token.Revoked {
		lg.Warn("refresh_revoked",
			slog.String("op", op),
			slog.String("user_id", token.UserID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	if now.After(token.ExpiresAt) {
		lg.Warn("refresh_expired",
			slog.String("op", op),
			slog.String("user_id", token.UserID.String()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	return token, nil
}

// revokeRefreshHash отзывает refresh-токен в БД и помечает его в кэше.
func (s *Service) revokeRefreshHash(ctx context.Context, hash string) (bool, error) {
	revoked, err := s.storage.RevokeRefreshToken(ctx, hash)
	if err != nil {
		return false, err
	}

	if revoked && s.rcache != nil {
		if cerr := s.rcache.MarkRevoked(ctx, hash); cerr != nil {
			log.From(ctx).Warn("refresh_cache_revoke_failed",
				slog.String("err", cerr.Error()),
			)
		}
	}

	return revoked, nil
}

// issueTokenPair выпускает новую пару access+refresh токенов.
// Если oldRefreshHash != "", атомарно отзывает старый refresh-токен.
func (s *Service) issueTokenPair(ctx context.Context, account *models.Account, oldRefreshHash string) (*models.TokenPair, error) {
	const op = "service/token/issueTokenPair"

	now := time.Now().UTC()

	accessToken, err := s.generateAccessToken(ctx, account, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if oldRefreshHash != "" {
		revoked, err := s.revokeRefreshHash(ctx, oldRefreshHash)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if !revoked {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
		}
	}

	plain, err := s.generateRefreshToken(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     accessToken,
		RefreshToken:    plain,
		AccessExpiresAt: now.Add(s.cfg.Auth.AccessTokenTTL),
	}, nil
}
