package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/akozadaev/rawgle/internal/models"
	"github.com/elastic/go-elasticsearch/v8"
)

// maxListSize ограничивает размер выборки одного поискового запроса (index.max_result_window по умолчанию).
const maxListSize = 10000

// DefaultSupplierMapping - маппинг индекса поставщиков, если файл миграции не найден.
const DefaultSupplierMapping = `{
  "mappings": {
    "properties": {
      "id":                 {"type": "keyword"},
      "name":               {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "address":            {"type": "text"},
      "city":               {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "state":              {"type": "text", "fields": {"raw": {"type": "keyword"}}},
      "country":            {"type": "keyword"},
      "location":           {"type": "geo_point"},
      "phone":              {"type": "keyword", "index": false},
      "website":            {"type": "keyword", "index": false},
      "rating":             {"type": "float"},
      "rating_count":       {"type": "integer"},
      "species":            {"type": "keyword"},
      "delivery_available": {"type": "boolean"},
      "pickup_available":   {"type": "boolean"},
      "description":        {"type": "text"},
      "updated_at":         {"type": "date"}
    }
  }
}`

// ElasticsearchStorage предоставляет методы для работы с индексом поставщиков в Elasticsearch/OpenSearch.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client     *elasticsearch.Client // Официальный клиент Elasticsearch
	index      string                // Имя индекса поставщиков
	httpClient *http.Client          // HTTP клиент для прямых запросов
	baseURL    string                // Базовый URL Elasticsearch/OpenSearch
	logger     *slog.Logger
}

// NewElasticsearchStorageWithURL создает новый экземпляр ElasticsearchStorage с указанным URL.
func NewElasticsearchStorageWithURL(client *elasticsearch.Client, index, baseURL string, logger *slog.Logger) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:     client,
		index:      index,
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// CreateIndex создает индекс в Elasticsearch/OpenSearch с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, mappingJSON string) error {
	res, err := es.client.Indices.Exists([]string{es.index}, es.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = es.client.Indices.Create(
		es.index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// BulkIndexSuppliers индексирует поставщиков одним запросом Bulk API.
func (es *ElasticsearchStorage) BulkIndexSuppliers(ctx context.Context, suppliers []models.Supplier) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for i := range suppliers {
		if err := suppliers[i].Validate(); err != nil {
			return fmt.Errorf("invalid supplier: %w", err)
		}

		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": es.index,
				"_id":    suppliers[i].ID,
			},
		}
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := enc.Encode(&suppliers[i]); err != nil {
			return fmt.Errorf("failed to encode supplier: %w", err)
		}
	}

	endpoint := es.baseURL + "/_bulk?refresh=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if result.Errors {
		return fmt.Errorf("error bulk indexing: some documents were rejected")
	}

	return nil
}

// GetSupplier получает поставщика по идентификатору.
func (es *ElasticsearchStorage) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	endpoint := fmt.Sprintf("%s/%s/_doc/%s", es.baseURL, url.PathEscape(es.index), url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := es.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrSupplierNotFound
	}

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error getting supplier: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Found  bool            `json:"found"`
		Source models.Supplier `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Found {
		return nil, ErrSupplierNotFound
	}
	if err := result.Source.Validate(); err != nil {
		es.logger.WarnContext(ctx, "invalid supplier record", "source", "elasticsearch", "error", err)
		return nil, ErrSupplierNotFound
	}

	return &result.Source, nil
}

// ListSuppliers возвращает всех поставщиков индекса. Если их больше maxListSize, возвращается ErrResultTooLarge.
func (es *ElasticsearchStorage) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return es.search(ctx, map[string]interface{}{"match_all": map[string]interface{}{}})
}

// ListSuppliersNear сужает выборку фильтром geo_distance. Радиус фильтра расширен,
// так как окончательную проверку расстояния выполняет вызывающая сторона.
func (es *ElasticsearchStorage) ListSuppliersNear(ctx context.Context, center models.GeoPoint, radiusKM int) ([]models.Supplier, error) {
	widened := float64(radiusKM)*1.01 + 1
	query := map[string]interface{}{
		"bool": map[string]interface{}{
			"filter": map[string]interface{}{
				"geo_distance": map[string]interface{}{
					"distance": fmt.Sprintf("%.3fkm", widened),
					"location": map[string]interface{}{
						"lat": center.Lat,
						"lon": center.Lon,
					},
				},
			},
		},
	}
	return es.search(ctx, query)
}

func (es *ElasticsearchStorage) search(ctx context.Context, query map[string]interface{}) ([]models.Supplier, error) {
	body := map[string]interface{}{
		"size":             maxListSize,
		"track_total_hits": true,
		"query":            query,
		"sort": []map[string]interface{}{
			{"id": map[string]interface{}{"order": "asc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/_search", es.baseURL, url.PathEscape(es.index))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := es.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error searching: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Supplier `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// неполная выборка потеряла бы поставщиков в радиусе
	if result.Hits.Total.Value > len(result.Hits.Hits) {
		return nil, fmt.Errorf("%w: %d hits in index %s, at most %d can be listed",
			ErrResultTooLarge, result.Hits.Total.Value, es.index, maxListSize)
	}

	suppliers := make([]models.Supplier, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		suppliers = append(suppliers, hit.Source)
	}

	return validSuppliers(es.logger, "elasticsearch", suppliers), nil
}
