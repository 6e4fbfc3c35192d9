package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"linkhub/internal/models"

	"github.com/uptrace/bun"
)

type LinkRepository struct {
	db bun.IDB
}

func NewLinkRepository(db bun.IDB) *LinkRepository {
	return &LinkRepository{db: db}
}

var _ LinkRepo = (*LinkRepository)(nil)

// ListAll returns every link with its category, ordered by category, sort
// order and insertion order.
func (r *LinkRepository) ListAll(ctx context.Context) ([]models.Link, error) {
	out := make([]models.Link, 0, 64)
	err := r.db.NewSelect().
		Model(&out).
		Relation("Category").
		Order("l.category_id ASC", "l.sort_order ASC", "l.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return out, nil
}

// ListActive returns active links across all categories, ordered the same
// way as ListAll but without the category relation.
func (r *LinkRepository) ListActive(ctx context.Context) ([]models.Link, error) {
	out := make([]models.Link, 0, 64)
	err := r.db.NewSelect().
		Model(&out).
		Where("l.is_active = ?", true).
		Order("l.category_id ASC", "l.sort_order ASC", "l.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active links: %w", err)
	}
	return out, nil
}

func (r *LinkRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.Link, error) {
	out := make([]models.Link, 0, 16)
	err := r.db.NewSelect().
		Model(&out).
		Where("l.category_id = ?", categoryID).
		Order("l.sort_order ASC", "l.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links of category %d: %w", categoryID, err)
	}
	return out, nil
}

// ListActiveTagged returns active links carrying one of tags, ordered by tag
// ascending and newest first within a tag.
func (r *LinkRepository) ListActiveTagged(ctx context.Context, tags []string) ([]models.Link, error) {
	out := make([]models.Link, 0, 64)
	if len(tags) == 0 {
		return out, nil
	}
	err := r.db.NewSelect().
		Model(&out).
		Where("l.is_active = ?", true).
		Where("l.tag IN (?)", bun.In(tags)).
		Order("l.tag ASC", "l.created_at DESC", "l.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tagged links: %w", err)
	}
	return out, nil
}

// Get fetches a link by id. Returns (nil, nil) if not found.
func (r *LinkRepository) Get(ctx context.Context, id int64) (*models.Link, error) {
	var l models.Link
	err := r.db.NewSelect().Model(&l).Where("l.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select link %d: %w", id, err)
	}
	return &l, nil
}

func (r *LinkRepository) CountByCategory(ctx context.Context, categoryID int64) (int, error) {
	n, err := r.db.NewSelect().
		Model((*models.Link)(nil)).
		Where("l.category_id = ?", categoryID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count links of category %d: %w", categoryID, err)
	}
	return n, nil
}

// Create inserts l and fills in its generated id.
func (r *LinkRepository) Create(ctx context.Context, l *models.Link) error {
	if _, err := r.db.NewInsert().Model(l).Exec(ctx); err != nil {
		return fmt.Errorf("insert link %q: %w", l.Name, MapDBError(err))
	}
	return nil
}

// Update writes every mutable column of l; created_at is left untouched.
func (r *LinkRepository) Update(ctx context.Context, l *models.Link) error {
	_, err := r.db.NewUpdate().
		Model(l).
		Column("name", "url", "category_id", "sort_order", "is_active", "tag", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update link %d: %w", l.ID, MapDBError(err))
	}
	return nil
}

// Delete removes a link. Reports false when no row matched.
func (r *LinkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.Link)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete link %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for link %d: %w", id, err)
	}
	return n > 0, nil
}
