package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"linkhub/internal/apperr"
	"linkhub/internal/models"

	goerrors "github.com/goliatone/go-errors"
)

// mockUserRepo is a lightweight in-test mock for repository.Authorization.
type mockUserRepo struct {
	CreateFn             func(u *models.User) (int64, error)
	GetByUsernameFn      func(username string) (*models.User, error)
	GetByIDFn            func(id int64) (*models.User, error)
	UpdatePasswordHashFn func(id int64, hash string) error

	getCalls    []string
	updateCalls []string
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) (int64, error) {
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.getCalls = append(m.getCalls, username)
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	m.updateCalls = append(m.updateCalls, hash)
	return m.UpdatePasswordHashFn(id, hash)
}

// failingCategoryRepo and failingLinkRepo fail every call, or t.Fatal when
// no store access is expected at all.
type failingCategoryRepo struct {
	t     *testing.T
	fatal bool
}

func (r failingCategoryRepo) fail() error {
	if r.fatal {
		r.t.Fatalf("category store must not be touched")
	}
	return errors.New("category store down")
}

func (r failingCategoryRepo) List(context.Context) ([]models.Category, error) { return nil, r.fail() }
func (r failingCategoryRepo) Get(context.Context, int64) (*models.Category, error) {
	return nil, r.fail()
}
func (r failingCategoryRepo) Create(context.Context, *models.Category) error { return r.fail() }
func (r failingCategoryRepo) Update(context.Context, *models.Category) error { return r.fail() }
func (r failingCategoryRepo) Delete(context.Context, int64) (bool, error)    { return false, r.fail() }

type failingLinkRepo struct {
	t     *testing.T
	fatal bool
}

func (r failingLinkRepo) fail() error {
	if r.fatal {
		r.t.Fatalf("link store must not be touched")
	}
	return errors.New("link store down")
}

func (r failingLinkRepo) ListAll(context.Context) ([]models.Link, error)    { return nil, r.fail() }
func (r failingLinkRepo) ListActive(context.Context) ([]models.Link, error) { return nil, r.fail() }
func (r failingLinkRepo) ListByCategory(context.Context, int64) ([]models.Link, error) {
	return nil, r.fail()
}
func (r failingLinkRepo) ListActiveTagged(context.Context, []string) ([]models.Link, error) {
	return nil, r.fail()
}
func (r failingLinkRepo) Get(context.Context, int64) (*models.Link, error)    { return nil, r.fail() }
func (r failingLinkRepo) CountByCategory(context.Context, int64) (int, error) { return 0, r.fail() }
func (r failingLinkRepo) Create(context.Context, *models.Link) error          { return r.fail() }
func (r failingLinkRepo) Update(context.Context, *models.Link) error          { return r.fail() }
func (r failingLinkRepo) Delete(context.Context, int64) (bool, error)         { return false, r.fail() }

// memCache is an in-memory ListingCache with call counters.
type memCache struct {
	mu            sync.Mutex
	categories    map[bool][]models.PublicCategory
	grouped       *models.LinksByTag
	hits          int
	invalidations int
	invalidateErr error
}

func newMemCache() *memCache {
	return &memCache{categories: map[bool][]models.PublicCategory{}}
}

func (c *memCache) GetCategories(_ context.Context, includeEmpty bool) ([]models.PublicCategory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.categories[includeEmpty]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *memCache) SetCategories(_ context.Context, includeEmpty bool, v []models.PublicCategory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categories[includeEmpty] = v
}

func (c *memCache) GetGrouped(context.Context) (*models.LinksByTag, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.grouped == nil {
		return nil, false
	}
	c.hits++
	return c.grouped, true
}

func (c *memCache) SetGrouped(_ context.Context, v *models.LinksByTag) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grouped = v
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	c.categories = map[bool][]models.PublicCategory{}
	c.grouped = nil
	return nil
}

// assertAppErr checks the go-errors category and client message of err.
func assertAppErr(t *testing.T, err error, category goerrors.Category, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error %q, got nil", category, msg)
	}
	if !apperr.IsCategory(err, category) {
		t.Fatalf("expected category %s, got %v", category, err)
	}
	if msg != "" {
		if got := apperr.Resolve(err).Message; got != msg {
			t.Fatalf("message = %q, want %q", got, msg)
		}
	}
}
