package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/akozadaev/rawgle/internal/config"
	"github.com/akozadaev/rawgle/internal/models"
	"github.com/akozadaev/rawgle/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	var (
		file    string
		target  string
		mapping string
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load suppliers from a JSON file into postgres, sqlite or elasticsearch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.SuppliersFile
			}

			suppliers, err := storage.LoadSuppliersFromFile(file)
			if err != nil {
				return err
			}
			suppliers = validOnly(logger, suppliers)
			logger.Info("indexing suppliers", "count", len(suppliers), "target", target, "file", file)

			if err := load(cmd.Context(), cfg, logger, target, mapping, suppliers); err != nil {
				return err
			}

			logger.Info("indexing completed successfully", "count", len(suppliers), "target", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with suppliers (default SUPPLIERS_FILE)")
	cmd.Flags().StringVarP(&target, "target", "t", config.SourcePostgres, "target store: postgres, sqlite or elasticsearch")
	cmd.Flags().StringVar(&mapping, "mapping", "migrations/elasticsearch_mapping.json", "Elasticsearch index mapping file")
	return cmd
}

func load(ctx context.Context, cfg *config.Config, logger *slog.Logger, target, mappingFile string, suppliers []models.Supplier) error {
	switch target {
	case config.SourcePostgres:
		pg, err := storage.NewPostgresStorage(cfg.PostgresDSN(), logger)
		if err != nil {
			return err
		}
		defer pg.Close()
		if err := pg.InitSchema(ctx); err != nil {
			return err
		}
		return pg.UpsertSuppliers(ctx, suppliers)

	case config.SourceSQLite:
		db, err := storage.OpenSQLite(cfg.SQLitePath, logger)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.InitSchema(ctx); err != nil {
			return err
		}
		return db.UpsertSuppliers(ctx, suppliers)

	case config.SourceElasticsearch:
		esClient, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses:         []string{cfg.ElasticsearchURL},
			DisableMetaHeader: true,
		})
		if err != nil {
			return fmt.Errorf("create Elasticsearch client: %w", err)
		}
		es := storage.NewElasticsearchStorageWithURL(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL, logger)

		mapping := storage.DefaultSupplierMapping
		if data, err := os.ReadFile(mappingFile); err == nil {
			mapping = string(data)
		} else {
			logger.Warn("mapping file not readable, using built-in mapping", "file", mappingFile, "error", err)
		}
		if err := es.CreateIndex(ctx, mapping); err != nil {
			return err
		}
		return es.BulkIndexSuppliers(ctx, suppliers)

	default:
		return fmt.Errorf("unknown target %q: expected postgres, sqlite or elasticsearch", target)
	}
}

// validOnly отбрасывает записи, нарушающие инварианты поставщика.
func validOnly(logger *slog.Logger, suppliers []models.Supplier) []models.Supplier {
	valid := suppliers[:0]
	for i := range suppliers {
		if err := suppliers[i].Validate(); err != nil {
			logger.Warn("skipping invalid supplier", "error", err)
			continue
		}
		valid = append(valid, suppliers[i])
	}
	return valid
}
