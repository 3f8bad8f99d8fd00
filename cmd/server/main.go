// @title           Rawgle Supplier Locator API
// @version         1.0
// @description     REST API локатора поставщиков сырого корма для животных: поиск поставщиков рядом с точкой, полнотекстовый поиск и справочник регионов.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/rawgle

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akozadaev/rawgle/docs"
	"github.com/akozadaev/rawgle/internal/cache"
	"github.com/akozadaev/rawgle/internal/config"
	"github.com/akozadaev/rawgle/internal/handlers"
	"github.com/akozadaev/rawgle/internal/logging"
	"github.com/akozadaev/rawgle/internal/ratelimit"
	"github.com/akozadaev/rawgle/internal/service"
	"github.com/akozadaev/rawgle/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, "rawgle-api", cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server terminated", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	source, closeSource, err := openSource(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()
	logger.Info("supplier source ready", "source", cfg.SupplierSource)

	store, closeCache := openCache(ctx, cfg, logger)
	defer closeCache()

	suppliers := service.NewSupplierService(source, store, cfg.CacheTTL, logger)
	h := handlers.NewHandlers(suppliers, logger)

	docs.SwaggerInfo.Host = cfg.SwaggerHost
	opts := handlers.RouterOptions{
		TrustProxy: cfg.TrustProxyHeaders,
		Swagger: httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("none"),
			httpSwagger.DomID("swagger-ui"),
		),
	}
	if cfg.RateLimitPerMinute > 0 {
		opts.Limiter = ratelimit.New(store, cfg.RateLimitPerMinute, time.Minute)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      handlers.NewRouter(h, opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// openSource подключает источник справочника, выбранный в конфигурации.
func openSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.SupplierSource, func(), error) {
	noop := func() {}

	switch cfg.SupplierSource {
	case config.SourcePostgres:
		pg, err := storage.NewPostgresStorage(cfg.PostgresDSN(), logger)
		if err != nil {
			return nil, noop, fmt.Errorf("create PostgreSQL client: %w", err)
		}
		if err := pg.InitSchema(ctx); err != nil {
			pg.Close()
			return nil, noop, err
		}
		return pg, func() { pg.Close() }, nil

	case config.SourceSQLite:
		db, err := storage.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return nil, noop, err
		}
		if err := db.InitSchema(ctx); err != nil {
			db.Close()
			return nil, noop, err
		}
		return db, func() { db.Close() }, nil

	case config.SourceElasticsearch:
		es, err := openElasticsearch(ctx, cfg, logger)
		if err != nil {
			return nil, noop, err
		}
		return es, noop, nil

	default:
		return storage.NewFileSource(cfg.SuppliersFile, logger), noop, nil
	}
}

func openElasticsearch(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage.ElasticsearchStorage, error) {
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create Elasticsearch client: %w", err)
	}
	es := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL, logger)

	mapping := storage.DefaultSupplierMapping
	for _, path := range []string{
		"migrations/elasticsearch_mapping.json",
		"../migrations/elasticsearch_mapping.json",
		filepath.Join(filepath.Dir(os.Args[0]), "../migrations/elasticsearch_mapping.json"),
	} {
		if data, err := os.ReadFile(path); err == nil {
			mapping = string(data)
			break
		}
	}

	if err := es.CreateIndex(ctx, mapping); err != nil {
		// индекс может создать индексатор позже
		logger.Warn("could not create index", "index", cfg.ElasticsearchIndex, "error", err)
	}
	return es, nil
}

// openCache возвращает кэш в памяти или Redis с резервным кэшем в памяти.
func openCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (cache.Store, func()) {
	memory := cache.NewMemoryStore()
	if cfg.RedisAddr == "" {
		logger.Info("redis disabled, using in-memory cache")
		return memory, func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	redisStore := cache.NewRedisStore(client, "rawgle:")

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisStore.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable at startup, falling back to memory until it recovers", "addr", cfg.RedisAddr, "error", err)
	}

	return cache.NewTieredStore(redisStore, memory, logger), func() { client.Close() }
}
