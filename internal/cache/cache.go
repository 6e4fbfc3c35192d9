// Package cache holds the best-effort cache in front of the public listings.
// A cache failure is always reported as a miss; callers fall back to the store.
package cache

import (
	"context"

	"linkhub/internal/models"
)

const (
	keyCategoriesAll      = "linkhub:public:categories:all"
	keyCategoriesNonEmpty = "linkhub:public:categories:nonempty"
	keyGrouped            = "linkhub:public:grouped"
)

// ListingCache caches the two public views.
type ListingCache interface {
	GetCategories(ctx context.Context, includeEmpty bool) ([]models.PublicCategory, bool)
	SetCategories(ctx context.Context, includeEmpty bool, v []models.PublicCategory)
	GetGrouped(ctx context.Context) (*models.LinksByTag, bool)
	SetGrouped(ctx context.Context, v *models.LinksByTag)
	// Invalidate drops every cached view. Called after each catalog write.
	Invalidate(ctx context.Context) error
}

func categoriesKey(includeEmpty bool) string {
	if includeEmpty {
		return keyCategoriesAll
	}
	return keyCategoriesNonEmpty
}

// NopCache never stores anything.
type NopCache struct{}

var _ ListingCache = NopCache{}

func (NopCache) GetCategories(context.Context, bool) ([]models.PublicCategory, bool) {
	return nil, false
}

func (NopCache) SetCategories(context.Context, bool, []models.PublicCategory) {}

func (NopCache) GetGrouped(context.Context) (*models.LinksByTag, bool) { return nil, false }

func (NopCache) SetGrouped(context.Context, *models.LinksByTag) {}

func (NopCache) Invalidate(context.Context) error { return nil }
