package handlers

import (
	"context"
	"net/http"

	"linkhub/internal/models"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginResult *service.LoginResult
	loginErr    error
	claims      *service.Claims
	authErr     error
	adminErr    error
	changeErr   error

	lastLoginUsername string
	lastLoginPassword string
	lastHeader        string
	lastChangeUserID  int64
	changeCalls       int
}

func (m *mockAuth) Login(_ context.Context, username, password string) (*service.LoginResult, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginResult, m.loginErr
}

func (m *mockAuth) Authenticate(header string) (*service.Claims, error) {
	m.lastHeader = header
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.claims, nil
}

func (m *mockAuth) RequireAdmin(claims *service.Claims) error {
	return m.adminErr
}

func (m *mockAuth) AuthorizeAdmin(header string) (*service.Claims, error) {
	claims, err := m.Authenticate(header)
	if err != nil {
		return nil, err
	}
	return claims, m.RequireAdmin(claims)
}

func (m *mockAuth) ChangePassword(_ context.Context, userID int64, current, next string) error {
	m.changeCalls++
	m.lastChangeUserID = userID
	return m.changeErr
}

func (m *mockAuth) CreateUser(context.Context, string, string, bool) (*models.User, error) {
	return nil, nil
}

type mockCatalog struct {
	publicCategories []models.PublicCategory
	grouped          *models.LinksByTag
	links            []models.Link
	categories       []models.Category
	link             *models.Link
	category         *models.Category
	err              error

	lastIncludeEmpty bool
	lastID           int64
	lastCategory     service.CategoryInput
	lastLink         service.LinkInput
	calls            int
}

func (m *mockCatalog) ListPublicCategories(_ context.Context, includeEmpty bool) ([]models.PublicCategory, error) {
	m.calls++
	m.lastIncludeEmpty = includeEmpty
	return m.publicCategories, m.err
}

func (m *mockCatalog) ListPublicLinksByTag(context.Context) (*models.LinksByTag, error) {
	m.calls++
	return m.grouped, m.err
}

func (m *mockCatalog) ListAllLinks(context.Context) ([]models.Link, error) {
	m.calls++
	return m.links, m.err
}

func (m *mockCatalog) ListAllCategories(context.Context) ([]models.Category, error) {
	m.calls++
	return m.categories, m.err
}

func (m *mockCatalog) GetLink(_ context.Context, id int64) (*models.Link, error) {
	m.calls++
	m.lastID = id
	return m.link, m.err
}

func (m *mockCatalog) GetCategory(_ context.Context, id int64) (*models.Category, error) {
	m.calls++
	m.lastID = id
	return m.category, m.err
}

func (m *mockCatalog) ListCategoryLinks(_ context.Context, id int64) ([]models.Link, error) {
	m.calls++
	m.lastID = id
	return m.links, m.err
}

func (m *mockCatalog) CreateCategory(_ context.Context, in service.CategoryInput) (*models.Category, error) {
	m.calls++
	m.lastCategory = in
	return m.category, m.err
}

func (m *mockCatalog) UpdateCategory(_ context.Context, id int64, in service.CategoryInput) (*models.Category, error) {
	m.calls++
	m.lastID = id
	m.lastCategory = in
	return m.category, m.err
}

func (m *mockCatalog) DeleteCategory(_ context.Context, id int64) error {
	m.calls++
	m.lastID = id
	return m.err
}

func (m *mockCatalog) CreateLink(_ context.Context, in service.LinkInput) (*models.Link, error) {
	m.calls++
	m.lastLink = in
	return m.link, m.err
}

func (m *mockCatalog) UpdateLink(_ context.Context, id int64, in service.LinkInput) (*models.Link, error) {
	m.calls++
	m.lastID = id
	m.lastLink = in
	return m.link, m.err
}

func (m *mockCatalog) DeleteLink(_ context.Context, id int64) error {
	m.calls++
	m.lastID = id
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// adminService returns a service whose guards admit every request.
func adminService(cat *mockCatalog) *service.Service {
	return &service.Service{
		Authorization: &mockAuth{claims: &service.Claims{UserID: 1, Username: "admin", IsAdmin: true}},
		Catalog:       cat,
	}
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
