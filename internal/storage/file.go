package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/akozadaev/rawgle/internal/models"
)

// FileSource читает справочник поставщиков из JSON-файла при каждом запросе.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource создает источник на основе JSON-файла с массивом поставщиков.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// ListSuppliers загружает и проверяет всех поставщиков из файла.
func (f *FileSource) ListSuppliers(_ context.Context) ([]models.Supplier, error) {
	suppliers, err := LoadSuppliersFromFile(f.path)
	if err != nil {
		return nil, err
	}
	return validSuppliers(f.logger, "file", suppliers), nil
}

// GetSupplier ищет поставщика в файле по идентификатору.
func (f *FileSource) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	suppliers, err := f.ListSuppliers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], nil
		}
	}
	return nil, ErrSupplierNotFound
}

// LoadSuppliersFromFile загружает поставщиков из JSON файла
func LoadSuppliersFromFile(filename string) ([]models.Supplier, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read suppliers file: %w", err)
	}

	var suppliers []models.Supplier
	if err := json.Unmarshal(data, &suppliers); err != nil {
		return nil, fmt.Errorf("failed to decode suppliers file: %w", err)
	}

	return suppliers, nil
}
