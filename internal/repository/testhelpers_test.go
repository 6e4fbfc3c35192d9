package repository

import (
	"context"
	"testing"
	"time"

	"linkhub/internal/models"
	"linkhub/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

// newSQLiteDB opens a fresh in-memory store with the schema applied.
func newSQLiteDB(t *testing.T) *bun.DB {
	t.Helper()
	bdb, err := db.Open(context.Background(), db.DriverSQLite, ":memory:", 1)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.EnsureSchema(context.Background(), bdb); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	t.Cleanup(func() { _ = bdb.Close() })
	return bdb
}

// newMockDB wraps sqlmock in a bun handle for failure-path tests.
func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = sqlDB.Close()
	})
	return bun.NewDB(sqlDB, sqlitedialect.New()), mock
}

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func seedCategory(t *testing.T, r *CategoryRepository, name string, order int) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, Order: order, CreatedAt: baseTime, UpdatedAt: baseTime}
	if err := r.Create(ctx(t), c); err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return c
}

func seedLink(t *testing.T, r *LinkRepository, l models.Link) *models.Link {
	t.Helper()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = baseTime
	}
	l.UpdatedAt = l.CreatedAt
	if err := r.Create(ctx(t), &l); err != nil {
		t.Fatalf("seed link %q: %v", l.Name, err)
	}
	return &l
}

func linkIDs(links []models.Link) []int64 {
	ids := make([]int64, len(links))
	for i, l := range links {
		ids[i] = l.ID
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
