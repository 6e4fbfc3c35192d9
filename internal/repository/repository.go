package repository

import (
	"context"

	"linkhub/internal/models"

	"github.com/uptrace/bun"
)

// Authorization is the user credential store.
type Authorization interface {
	Create(ctx context.Context, u *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type LinkRepo interface {
	ListAll(ctx context.Context) ([]models.Link, error)
	ListActive(ctx context.Context) ([]models.Link, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Link, error)
	ListActiveTagged(ctx context.Context, tags []string) ([]models.Link, error)
	Get(ctx context.Context, id int64) (*models.Link, error)
	CountByCategory(ctx context.Context, categoryID int64) (int, error)
	Create(ctx context.Context, l *models.Link) error
	Update(ctx context.Context, l *models.Link) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type Repository struct {
	Auth       Authorization
	Categories CategoryRepo
	Links      LinkRepo
}

func NewRepository(db *bun.DB) *Repository {
	return &Repository{
		Auth:       NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Links:      NewLinkRepository(db),
	}
}
