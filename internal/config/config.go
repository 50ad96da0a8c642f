// config предоставляет структуру конфигурации портала и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Ops      OpsConfig     `yaml:"ops"`
	DB       DBConfig      `yaml:"db"`
	Mongo    MongoConfig   `yaml:"mongo"`
	S3       S3Config      `yaml:"s3"`
	Redis    RedisConfig   `yaml:"redis"`
	Auth     AuthConfig    `yaml:"auth"`
	Fetcher  FetcherConfig `yaml:"fetcher"`
	Uploads  UploadsConfig `yaml:"uploads"`
	Limits   LimitsConfig  `yaml:"limits"`
	Mail     MailConfig    `yaml:"mail"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки основного HTTP-сервера (REST API).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// OpsConfig — сетевые настройки служебного HTTP-сервера (healthz/metrics).
type OpsConfig struct {
	Host string `yaml:"host" env:"OPS_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"OPS_PORT" env-default:"9090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (o OpsConfig) Addr() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// DBConfig — настройки подключения к PostgreSQL.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// MongoConfig — настройки подключения к MongoDB (комментарии).
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL" env-required:"true"`
}

// S3Config — настройки MinIO/S3 для документов и изображений профилей.
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"newsportal"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"15m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// RedisConfig — опциональный кэш refresh-токенов.
// Пустой URL отключает кэш.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// AuthConfig содержит параметры выпуска и валидации токенов.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	ResetTokenTTL   time.Duration `yaml:"reset_token_ttl" env:"RESET_TOKEN_TTL" env-default:"1h"`
	Issuer          string        `yaml:"issuer" env:"ISSUER" env-default:"newsportal"`
	Audience        []string      `yaml:"audience" env:"AUDIENCE" env-default:"newsportal-web"`
}

// FetcherConfig — параметры загрузки внешних новостей.
// Ключ API передаётся только через конфигурацию (никогда не в коде).
type FetcherConfig struct {
	NewsDataBaseURL string        `yaml:"newsdata_base_url" env:"NEWSDATA_BASE_URL" env-default:"https://newsdata.io/api/1/news"`
	NewsDataAPIKey  string        `yaml:"newsdata_api_key" env:"NEWSDATA_API_KEY"`
	Language        string        `yaml:"language" env:"NEWSDATA_LANGUAGE" env-default:"en"`
	RSSSources      []string      `yaml:"rss_sources" env:"RSS_SOURCES" env-separator:","`
	Interval        time.Duration `yaml:"interval" env:"FETCH_INTERVAL" env-default:"30m"`
}

// UploadsConfig — ограничения на загружаемые документы/изображения.
type UploadsConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"UPLOAD_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"UPLOAD_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"application/pdf,image/jpeg,image/png,image/webp"`
}

// LimitsConfig — серверные лимиты на выдачу списков.
type LimitsConfig struct {
	// Применяется при запросе с limit=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"100"`
}

// MailConfig — параметры формирования писем (доставка — внешний коллаборатор).
type MailConfig struct {
	FrontendBaseURL string `yaml:"frontend_base_url" env:"FRONTEND_BASE_URL" env-default:"http://localhost:3000"`
	FromAddress     string `yaml:"from_address" env:"MAIL_FROM" env-default:"no-reply@newsportal.local"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if c.Fetcher.Interval < time.Minute {
		return fmt.Errorf("fetcher.interval must be at least 1m")
	}

	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}

	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}

	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}

	if c.Uploads.MaxSizeBytes <= 0 {
		return fmt.Errorf("uploads.max_size_bytes must be > 0")
	}

	return nil
}
