package db

import (
	"context"
	"fmt"

	"linkhub/internal/models"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the users, categories and links tables if missing.
// links.category_id references categories(id) and blocks deletion of a
// referenced category at the store level.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewCreateTable().
			Model((*models.User)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("create table users: %w", err)
		}

		if _, err := tx.NewCreateTable().
			Model((*models.Category)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return fmt.Errorf("create table categories: %w", err)
		}

		if _, err := tx.NewCreateTable().
			Model((*models.Link)(nil)).
			IfNotExists().
			ForeignKey(`(?) REFERENCES ? (?) ON DELETE RESTRICT`,
				bun.Ident("category_id"), bun.Ident("categories"), bun.Ident("id")).
			Exec(ctx); err != nil {
			return fmt.Errorf("create table links: %w", err)
		}
		return nil
	})
}
