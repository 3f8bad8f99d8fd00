// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Источники справочника поставщиков.
const (
	SourceFile          = "file"
	SourcePostgres      = "postgres"
	SourceElasticsearch = "elasticsearch"
	SourceSQLite        = "sqlite"
)

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения (и файла .env) с fallback на значения по умолчанию.
type Config struct {
	AppPort            string        // Порт для HTTP сервера
	SupplierSource     string        // Источник справочника: file, postgres, elasticsearch, sqlite
	SuppliersFile      string        // JSON файл со справочником
	ElasticsearchURL   string        // URL для подключения к Elasticsearch/OpenSearch
	ElasticsearchIndex string        // Индекс поставщиков
	PostgresHost       string        // Хост PostgreSQL
	PostgresPort       string        // Порт PostgreSQL
	PostgresUser       string        // Пользователь PostgreSQL
	PostgresPassword   string        // Пароль PostgreSQL
	PostgresDB         string        // Имя базы данных PostgreSQL
	SQLitePath         string        // Путь к файлу SQLite
	RedisAddr          string        // Адрес Redis, пусто - только кэш в памяти
	RedisPassword      string        // Пароль Redis
	RedisDB            int           // Номер базы Redis
	CacheTTL           time.Duration // Время жизни кэшированных ответов
	RateLimitPerMinute int           // Лимит запросов в минуту на клиента, 0 - без ограничения
	TrustProxyHeaders  bool          // Доверять X-Forwarded-For
	LogLevel           string        // debug, info, warn, error
	LogFormat          string        // json или text
	SwaggerHost        string        // Хост для ссылок Swagger UI
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена, используется значение по умолчанию.
func Load() (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	defaults := map[string]any{
		"APP_PORT":              "8080",
		"SUPPLIER_SOURCE":       SourceFile,
		"SUPPLIERS_FILE":        "data/suppliers.json",
		"ELASTICSEARCH_URL":     "http://localhost:9200",
		"ELASTICSEARCH_INDEX":   "suppliers",
		"POSTGRES_HOST":         "localhost",
		"POSTGRES_PORT":         "5432",
		"POSTGRES_USER":         "rawgle",
		"POSTGRES_PASSWORD":     "rawgle",
		"POSTGRES_DB":           "rawgle",
		"SQLITE_PATH":           "data/rawgle.db",
		"REDIS_ADDR":            "",
		"REDIS_PASSWORD":        "",
		"REDIS_DB":              0,
		"CACHE_TTL":             "5m",
		"RATE_LIMIT_PER_MINUTE": 120,
		"TRUST_PROXY_HEADERS":   false,
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",
		"SWAGGER_HOST":          "localhost:8080",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	ttl, err := time.ParseDuration(v.GetString("CACHE_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		AppPort:            v.GetString("APP_PORT"),
		SupplierSource:     strings.ToLower(v.GetString("SUPPLIER_SOURCE")),
		SuppliersFile:      v.GetString("SUPPLIERS_FILE"),
		ElasticsearchURL:   v.GetString("ELASTICSEARCH_URL"),
		ElasticsearchIndex: v.GetString("ELASTICSEARCH_INDEX"),
		PostgresHost:       v.GetString("POSTGRES_HOST"),
		PostgresPort:       v.GetString("POSTGRES_PORT"),
		PostgresUser:       v.GetString("POSTGRES_USER"),
		PostgresPassword:   v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:         v.GetString("POSTGRES_DB"),
		SQLitePath:         v.GetString("SQLITE_PATH"),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		CacheTTL:           ttl,
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		TrustProxyHeaders:  v.GetBool("TRUST_PROXY_HEADERS"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
		SwaggerHost:        v.GetString("SWAGGER_HOST"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// PostgresDSN возвращает строку подключения к PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresDB,
	)
}

func (c *Config) validate() error {
	switch c.SupplierSource {
	case SourceFile, SourcePostgres, SourceElasticsearch, SourceSQLite:
	default:
		return fmt.Errorf("unknown SUPPLIER_SOURCE %q", c.SupplierSource)
	}
	if c.CacheTTL < 0 {
		return errors.New("CACHE_TTL cannot be negative")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE cannot be negative")
	}
	return nil
}
