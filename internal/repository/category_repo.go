package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"linkhub/internal/models"

	"github.com/uptrace/bun"
)

type CategoryRepository struct {
	db bun.IDB
}

func NewCategoryRepository(db bun.IDB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ CategoryRepo = (*CategoryRepository)(nil)

// List returns every category ordered by sort order, then insertion order.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	out := make([]models.Category, 0, 16)
	err := r.db.NewSelect().
		Model(&out).
		Order("c.sort_order ASC", "c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// Get fetches a category by id. Returns (nil, nil) if not found.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.db.NewSelect().Model(&c).Where("c.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select category %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts c and fills in its generated id.
func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	if _, err := r.db.NewInsert().Model(c).Exec(ctx); err != nil {
		return fmt.Errorf("insert category %q: %w", c.Name, MapDBError(err))
	}
	return nil
}

// Update writes the mutable columns of c.
func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	_, err := r.db.NewUpdate().
		Model(c).
		Column("name", "sort_order", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update category %d: %w", c.ID, MapDBError(err))
	}
	return nil
}

// Delete removes a category. Reports false when no row matched.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.Category)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete category %d: %w", id, MapDBError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for category %d: %w", id, err)
	}
	return n > 0, nil
}
