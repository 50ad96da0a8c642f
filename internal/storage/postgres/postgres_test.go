package postgres

// Интеграционные тесты пакета postgres:
// - поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяют миграции из ./migrations;
// - проверяют транзакционную регистрацию, модерацию профилей, жизненный цикл
//   статей с реакциями и идемпотентный upsert новостей по source_id.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/RajivKhattri/newsportal/internal/models"
)

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций независимо от рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(repoRootFromThisFile(), "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

var migrationFiles = []string{
	"1_init_accounts.up.sql",
	"2_init_profiles.up.sql",
	"3_init_articles.up.sql",
	"4_init_news.up.sql",
	"5_init_tokens.up.sql",
	"6_init_role_changes.up.sql",
}

// startPostgres — поднимает временный PostgreSQL, применяет все миграции
// и возвращает инициализированное хранилище с функцией очистки.
// Без GO_TEST_INTEGRATION=1 тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, name := range migrationFiles {
		_, err = pool.Exec(ctx, readMigration(t, name))
		require.NoError(t, err, "apply migration %s", name)
	}

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// mustRegister — создаёт учётную запись с профилем напрямую через хранилище.
func mustRegister(t *testing.T, st *Storage, role models.Role, active bool) *models.Account {
	t.Helper()

	id := uuid.New()
	account := &models.Account{
		ID:           id,
		Username:     "u-" + id.String()[:8],
		Email:        "u-" + id.String()[:8] + "@example.com",
		Role:         role,
		PasswordHash: "hash",
		IsActive:     active,
	}

	status := models.ApprovalStatusPending
	if role == models.RoleUser {
		status = models.ApprovalStatusApproved
	}

	profile := &models.Profile{
		UserID:         id,
		Role:           role,
		ApprovalStatus: status,
	}

	require.NoError(t, st.CreateAccountWithProfile(context.Background(), account, profile))
	return account
}
