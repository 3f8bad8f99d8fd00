package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akozadaev/rawgle/internal/models"
	"github.com/jmoiron/sqlx"
)

const supplierColumns = `id, name, address, city, state, country, latitude, longitude, phone, website, ` +
	`rating, rating_count, species, delivery_available, pickup_available, description, updated_at`

const upsertSupplierQuery = `INSERT INTO suppliers (` + supplierColumns + `)
	VALUES (:id, :name, :address, :city, :state, :country, :latitude, :longitude, :phone, :website,
		:rating, :rating_count, :species, :delivery_available, :pickup_available, :description, :updated_at)
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		address = excluded.address,
		city = excluded.city,
		state = excluded.state,
		country = excluded.country,
		latitude = excluded.latitude,
		longitude = excluded.longitude,
		phone = excluded.phone,
		website = excluded.website,
		rating = excluded.rating,
		rating_count = excluded.rating_count,
		species = excluded.species,
		delivery_available = excluded.delivery_available,
		pickup_available = excluded.pickup_available,
		description = excluded.description,
		updated_at = excluded.updated_at`

// supplierRow - строка таблицы suppliers.
type supplierRow struct {
	ID                string          `db:"id"`
	Name              string          `db:"name"`
	Address           string          `db:"address"`
	City              string          `db:"city"`
	State             string          `db:"state"`
	Country           string          `db:"country"`
	Latitude          float64         `db:"latitude"`
	Longitude         float64         `db:"longitude"`
	Phone             string          `db:"phone"`
	Website           string          `db:"website"`
	Rating            sql.NullFloat64 `db:"rating"`
	RatingCount       int             `db:"rating_count"`
	Species           string          `db:"species"`
	DeliveryAvailable bool            `db:"delivery_available"`
	PickupAvailable   bool            `db:"pickup_available"`
	Description       string          `db:"description"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (r *supplierRow) toModel() models.Supplier {
	s := models.Supplier{
		ID:                r.ID,
		Name:              r.Name,
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		Country:           r.Country,
		Location:          models.GeoPoint{Lat: r.Latitude, Lon: r.Longitude},
		Phone:             r.Phone,
		Website:           r.Website,
		RatingCount:       r.RatingCount,
		Species:           models.Species(r.Species),
		DeliveryAvailable: r.DeliveryAvailable,
		PickupAvailable:   r.PickupAvailable,
		Description:       r.Description,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.Rating.Valid {
		rating := r.Rating.Float64
		s.Rating = &rating
	}
	return s
}

func rowFromModel(s *models.Supplier) supplierRow {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	row := supplierRow{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		City:              s.City,
		State:             s.State,
		Country:           s.Country,
		Latitude:          s.Location.Lat,
		Longitude:         s.Location.Lon,
		Phone:             s.Phone,
		Website:           s.Website,
		RatingCount:       s.RatingCount,
		Species:           string(s.Species),
		DeliveryAvailable: s.DeliveryAvailable,
		PickupAvailable:   s.PickupAvailable,
		Description:       s.Description,
		UpdatedAt:         updatedAt,
	}
	if s.Rating != nil {
		row.Rating = sql.NullFloat64{Float64: *s.Rating, Valid: true}
	}
	return row
}

// sqlDirectory реализует общие для PostgreSQL и SQLite операции над таблицей suppliers.
type sqlDirectory struct {
	db     *sqlx.DB
	logger *slog.Logger
	name   string
}

// Close закрывает подключение к базе данных.
func (d *sqlDirectory) Close() error {
	return d.db.Close()
}

// ListSuppliers возвращает всех поставщиков, упорядоченных по идентификатору.
func (d *sqlDirectory) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var rows []supplierRow
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY id`
	if err := d.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}

	suppliers := make([]models.Supplier, 0, len(rows))
	for i := range rows {
		suppliers = append(suppliers, rows[i].toModel())
	}
	return validSuppliers(d.logger, d.name, suppliers), nil
}

// GetSupplier возвращает поставщика по идентификатору.
func (d *sqlDirectory) GetSupplier(ctx context.Context, id string) (*models.Supplier, error) {
	var row supplierRow
	query := d.db.Rebind(`SELECT ` + supplierColumns + ` FROM suppliers WHERE id = ?`)
	if err := d.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}

	s := row.toModel()
	if err := s.Validate(); err != nil {
		// такую запись не вернул бы и ListSuppliers
		d.logger.WarnContext(ctx, "invalid supplier record", "source", d.name, "error", err)
		return nil, ErrSupplierNotFound
	}
	return &s, nil
}

// ListRegions возвращает пары страна/регион с количеством поставщиков.
func (d *sqlDirectory) ListRegions(ctx context.Context) ([]models.Region, error) {
	query := `SELECT country, state, COUNT(*) AS suppliers FROM suppliers GROUP BY country, state ORDER BY country, state`

	var regions []models.Region
	rows, err := d.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r models.Region
		if err := rows.Scan(&r.Country, &r.State, &r.Suppliers); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return regions, nil
}

// UpsertSuppliers вставляет или обновляет поставщиков в одной транзакции.
func (d *sqlDirectory) UpsertSuppliers(ctx context.Context, suppliers []models.Supplier) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range suppliers {
		if err := suppliers[i].Validate(); err != nil {
			return fmt.Errorf("invalid supplier: %w", err)
		}
		if _, err := tx.NamedExecContext(ctx, upsertSupplierQuery, rowFromModel(&suppliers[i])); err != nil {
			return fmt.Errorf("failed to upsert supplier %s: %w", suppliers[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit suppliers: %w", err)
	}
	return nil
}

func (d *sqlDirectory) initSchema(ctx context.Context, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := d.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
