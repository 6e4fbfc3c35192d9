package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"linkhub/internal/apperr"
	"linkhub/internal/cache"
	"linkhub/internal/logger"
	"linkhub/internal/models"
	"linkhub/internal/repository"

	"golang.org/x/sync/singleflight"
)

const (
	MsgCategoryNotFound = "Category not found"
	MsgLinkNotFound     = "Link not found"
	MsgCategoryHasLinks = "Cannot delete category with links"
)

// sharedLoadTimeout bounds a public view load shared by concurrent callers.
// The load outlives any single caller's cancellation.
const sharedLoadTimeout = 10 * time.Second

const groupedFlightKey = "public-grouped"

// CatalogService enforces the link/category rules and serves the public views.
type CatalogService struct {
	categories repository.CategoryRepo
	links      repository.LinkRepo
	cache      cache.ListingCache
	sf         singleflight.Group
	// gen is bumped under fillMu by every write; a view loaded under an
	// older generation is not stored.
	gen    atomic.Uint64
	fillMu sync.Mutex
	log    *logger.Logger
	now    func() time.Time
}

func NewCatalogService(categories repository.CategoryRepo, links repository.LinkRepo, listing cache.ListingCache, log *logger.Logger) *CatalogService {
	if listing == nil {
		listing = cache.NopCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CatalogService{
		categories: categories,
		links:      links,
		cache:      listing,
		log:        log,
		now:        time.Now,
	}
}

// ---- public views ----

// ListPublicCategories returns categories with their active links. Empty
// categories are dropped unless includeEmpty.
func (s *CatalogService) ListPublicCategories(ctx context.Context, includeEmpty bool) ([]models.PublicCategory, error) {
	if v, ok := s.cache.GetCategories(ctx, includeEmpty); ok {
		return v, nil
	}
	res, err := s.shared(ctx, categoriesFlightKey(includeEmpty), func(loadCtx context.Context) (interface{}, error) {
		gen := s.gen.Load()
		out, err := s.loadPublicCategories(loadCtx, includeEmpty)
		if err != nil {
			return nil, err
		}
		s.storeIfCurrent(gen, func() { s.cache.SetCategories(loadCtx, includeEmpty, out) })
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]models.PublicCategory), nil
}

func categoriesFlightKey(includeEmpty bool) string {
	return fmt.Sprintf("public-categories:%t", includeEmpty)
}

// shared runs load once for all concurrent callers of key. The load runs
// detached from ctx; each caller stops waiting when its own ctx is done.
func (s *CatalogService) shared(ctx context.Context, key string, load func(context.Context) (interface{}, error)) (interface{}, error) {
	ch := s.sf.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()
		return load(loadCtx)
	})
	select {
	case <-ctx.Done():
		return nil, apperr.Internal(ctx.Err(), "wait for public listing")
	case r := <-ch:
		return r.Val, r.Err
	}
}

// storeIfCurrent runs set unless a write happened since gen was read.
func (s *CatalogService) storeIfCurrent(gen uint64, set func()) bool {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if s.gen.Load() != gen {
		return false
	}
	set()
	return true
}

func (s *CatalogService) loadPublicCategories(ctx context.Context, includeEmpty bool) ([]models.PublicCategory, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "list categories")
	}
	active, err := s.links.ListActive(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "list active links")
	}

	byCategory := make(map[int64][]models.Link, len(cats))
	for _, l := range active {
		byCategory[l.CategoryID] = append(byCategory[l.CategoryID], l)
	}

	out := make([]models.PublicCategory, 0, len(cats))
	for _, c := range cats {
		links := byCategory[c.ID]
		if len(links) == 0 && !includeEmpty {
			continue
		}
		if links == nil {
			links = []models.Link{}
		}
		out = append(out, models.PublicCategory{Category: c, Links: links})
	}
	return out, nil
}

// ---- admin reads ----

func (s *CatalogService) ListAllLinks(ctx context.Context) ([]models.Link, error) {
	links, err := s.links.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "list links")
	}
	return links, nil
}

func (s *CatalogService) ListAllCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err, "list categories")
	}
	return cats, nil
}

func (s *CatalogService) GetLink(ctx context.Context, id int64) (*models.Link, error) {
	l, err := s.links.Get(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "get link")
	}
	if l == nil {
		return nil, apperr.NotFound(MsgLinkNotFound)
	}
	return l, nil
}

func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "get category")
	}
	if c == nil {
		return nil, apperr.NotFound(MsgCategoryNotFound)
	}
	return c, nil
}

// ListCategoryLinks returns every link of one category, active or not.
func (s *CatalogService) ListCategoryLinks(ctx context.Context, categoryID int64) ([]models.Link, error) {
	if _, err := s.GetCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	links, err := s.links.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal(err, "list category links")
	}
	return links, nil
}

// ---- category writes ----

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	name, order, err := normalizeCategoryInput(in)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	c := &models.Category{Name: name, Order: order, CreatedAt: now, UpdatedAt: now}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, apperr.Internal(err, "create category")
	}
	s.invalidate(ctx, "category_created")
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*models.Category, error) {
	name, order, err := normalizeCategoryInput(in)
	if err != nil {
		return nil, err
	}
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Order = order
	c.UpdatedAt = s.now().UTC()
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, apperr.Internal(err, "update category")
	}
	s.invalidate(ctx, "category_updated")
	return c, nil
}

// DeleteCategory refuses to remove a category that still has links. The
// count is checked first; the foreign key catches links added in between.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	n, err := s.links.CountByCategory(ctx, id)
	if err != nil {
		return apperr.Internal(err, "count category links")
	}
	if n > 0 {
		return apperr.Conflict(MsgCategoryHasLinks)
	}
	ok, err := s.categories.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return apperr.Conflict(MsgCategoryHasLinks)
		}
		return apperr.Internal(err, "delete category")
	}
	if !ok {
		return apperr.NotFound(MsgCategoryNotFound)
	}
	s.invalidate(ctx, "category_deleted")
	return nil
}

// ---- link writes ----

func (s *CatalogService) CreateLink(ctx context.Context, in LinkInput) (*models.Link, error) {
	n, err := normalizeLinkInput(in)
	if err != nil {
		return nil, err
	}
	cat, err := s.GetCategory(ctx, n.categoryID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	l := &models.Link{CreatedAt: now, UpdatedAt: now}
	n.apply(l)
	if err := s.links.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperr.NotFound(MsgCategoryNotFound)
		}
		return nil, apperr.Internal(err, "create link")
	}
	l.Category = cat
	s.invalidate(ctx, "link_created")
	return l, nil
}

func (s *CatalogService) UpdateLink(ctx context.Context, id int64, in LinkInput) (*models.Link, error) {
	n, err := normalizeLinkInput(in)
	if err != nil {
		return nil, err
	}
	l, err := s.GetLink(ctx, id)
	if err != nil {
		return nil, err
	}
	cat, err := s.GetCategory(ctx, n.categoryID)
	if err != nil {
		return nil, err
	}

	n.apply(l)
	l.UpdatedAt = s.now().UTC()
	if err := s.links.Update(ctx, l); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperr.NotFound(MsgCategoryNotFound)
		}
		return nil, apperr.Internal(err, "update link")
	}
	l.Category = cat
	s.invalidate(ctx, "link_updated")
	return l, nil
}

func (s *CatalogService) DeleteLink(ctx context.Context, id int64) error {
	ok, err := s.links.Delete(ctx, id)
	if err != nil {
		return apperr.Internal(err, "delete link")
	}
	if !ok {
		return apperr.NotFound(MsgLinkNotFound)
	}
	s.invalidate(ctx, "link_deleted")
	return nil
}

// invalidate drops cached public views after a write. Failures are logged only.
func (s *CatalogService) invalidate(ctx context.Context, reason string) {
	s.fillMu.Lock()
	s.gen.Add(1)
	s.fillMu.Unlock()

	s.sf.Forget(categoriesFlightKey(false))
	s.sf.Forget(categoriesFlightKey(true))
	s.sf.Forget(groupedFlightKey)

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warnw("catalog_cache_invalidate_failed", "reason", reason, "error", err)
	}
}
