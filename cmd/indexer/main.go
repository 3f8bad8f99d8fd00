// Команда indexer загружает справочник поставщиков в хранилища и генерирует тестовые данные.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/akozadaev/rawgle/internal/config"
	"github.com/akozadaev/rawgle/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "indexer",
		Short:         "Load and generate Rawgle supplier directory data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLoadCmd(), newGenerateCmd())
	return root
}

// setup загружает конфигурацию и создает логгер для подкоманд.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(os.Stderr, "rawgle-indexer", cfg.LogLevel, cfg.LogFormat), nil
}
