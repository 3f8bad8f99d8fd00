package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

var rowColumns = []string{
	"id", "name", "address", "city", "state", "country", "latitude", "longitude", "phone", "website",
	"rating", "rating_count", "species", "delivery_available", "pickup_available", "description", "updated_at",
}

func newMockPostgres(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewPostgresStorageFromDB(sqlx.NewDb(db, "postgres"), discardLogger()), mock
}

func TestPostgresListSuppliers(t *testing.T) {
	ps, mock := newMockPostgres(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(rowColumns).
		AddRow("sup-1", "Cardiff Raw Co", "1 Queen St", "Cardiff", "Wales", "UK", 51.48, -3.18, "", "", 4.5, 12, "both", true, false, "", now).
		AddRow("sup-2", "Bristol Barf", "", "Bristol", "England", "UK", 51.45, -2.58, "", "", nil, 0, "dogs", false, true, "", now).
		// нарушенный инвариант: запись должна быть отброшена
		AddRow("sup-3", "Broken", "", "", "", "", 91.0, 0.0, "", "", nil, 0, "ferrets", false, false, "", now)
	mock.ExpectQuery(`SELECT .* FROM suppliers ORDER BY id`).WillReturnRows(rows)

	got, err := ps.ListSuppliers(context.Background())
	if err != nil {
		t.Fatalf("ListSuppliers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 valid suppliers, got %d", len(got))
	}
	if got[0].Rating == nil || *got[0].Rating != 4.5 || got[1].Rating != nil {
		t.Errorf("ratings not mapped: %v %v", got[0].Rating, got[1].Rating)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresGetSupplierNotFound(t *testing.T) {
	ps, mock := newMockPostgres(t)

	mock.ExpectQuery(`SELECT .* FROM suppliers WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(rowColumns))

	_, err := ps.GetSupplier(context.Background(), "missing")
	if !errors.Is(err, ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

func TestPostgresListSuppliersError(t *testing.T) {
	ps, mock := newMockPostgres(t)

	mock.ExpectQuery(`SELECT .* FROM suppliers`).WillReturnError(errors.New("connection refused"))

	if _, err := ps.ListSuppliers(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestPostgresUpsertSuppliers(t *testing.T) {
	ps, mock := newMockPostgres(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)INSERT INTO suppliers .* ON CONFLICT \(id\) DO UPDATE`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)INSERT INTO suppliers .* ON CONFLICT \(id\) DO UPDATE`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := ps.UpsertSuppliers(context.Background(), sampleSuppliers()); err != nil {
		t.Fatalf("UpsertSuppliers: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPostgresListRegions(t *testing.T) {
	ps, mock := newMockPostgres(t)

	mock.ExpectQuery(`SELECT country, state, COUNT\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"country", "state", "suppliers"}).
			AddRow("UK", "England", 3).
			AddRow("UK", "Wales", 1))

	regions, err := ps.ListRegions(context.Background())
	if err != nil {
		t.Fatalf("ListRegions: %v", err)
	}
	if len(regions) != 2 || regions[0].State != "England" || regions[0].Suppliers != 3 {
		t.Errorf("unexpected regions: %+v", regions)
	}
}
