package service

import (
	"context"
	"time"

	"linkhub/internal/cache"
	"linkhub/internal/logger"
	"linkhub/internal/models"
	"linkhub/internal/repository"
)

// Authorization covers sign-in and the guards in front of protected routes.
type Authorization interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Authenticate(header string) (*Claims, error)
	RequireAdmin(claims *Claims) error
	AuthorizeAdmin(header string) (*Claims, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	CreateUser(ctx context.Context, username, password string, isAdmin bool) (*models.User, error)
}

// Catalog exposes the public views and the admin category/link operations.
type Catalog interface {
	ListPublicCategories(ctx context.Context, includeEmpty bool) ([]models.PublicCategory, error)
	ListPublicLinksByTag(ctx context.Context) (*models.LinksByTag, error)

	ListAllLinks(ctx context.Context) ([]models.Link, error)
	ListAllCategories(ctx context.Context) ([]models.Category, error)
	GetLink(ctx context.Context, id int64) (*models.Link, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	ListCategoryLinks(ctx context.Context, categoryID int64) ([]models.Link, error)

	CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateLink(ctx context.Context, in LinkInput) (*models.Link, error)
	UpdateLink(ctx context.Context, id int64, in LinkInput) (*models.Link, error)
	DeleteLink(ctx context.Context, id int64) error
}

// CacheWarmer runs the background loop that keeps the listing cache hot.
// Stop via context cancellation.
type CacheWarmer interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Catalog
	CacheWarmer
}

func NewService(repos *repository.Repository, tokens *TokenService, listing cache.ListingCache, log *logger.Logger) *Service {
	catalog := NewCatalogService(repos.Categories, repos.Links, listing, log)
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokens, log),
		Catalog:       catalog,
		CacheWarmer:   NewCacheWarmerService(catalog, log),
	}
}
