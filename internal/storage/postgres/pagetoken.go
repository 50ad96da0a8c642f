package postgres

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(ts time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%d|%s", ts.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return time.Unix(0, t).UTC(), id, nil
}

// normalizeLimit приводит лимит страницы к допустимому положительному значению.
func normalizeLimit(limit int32) int32 {
	if limit <= 0 {
		return 1
	}

	return limit
}
