package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"linkhub/internal/cache"
	"linkhub/internal/repository"
	"linkhub/internal/repository/db"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"
)

// newIntegrationRouter wires the real services over an in-memory store and
// seeds alice/secret1 as admin and bob/secret2 as a regular user.
func newIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()
	bdb, err := db.Open(ctx, db.DriverSQLite, ":memory:", 1)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = bdb.Close() })
	if err := db.EnsureSchema(ctx, bdb); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	services := service.NewService(repository.NewRepository(bdb), service.NewTokenService("it-secret", time.Hour), cache.NopCache{}, nil)
	if _, err := services.CreateUser(ctx, "alice", "secret1", true); err != nil {
		t.Fatalf("seed alice: %v", err)
	}
	if _, err := services.CreateUser(ctx, "bob", "secret2", false); err != nil {
		t.Fatalf("seed bob: %v", err)
	}
	return newTestRouter(services)
}

func loginToken(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/auth/login",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password), nil)
	expectStatus(t, w, http.StatusOK)
	var out struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Token == "" {
		t.Fatalf("empty token")
	}
	return out.Token
}

func decodeID(t *testing.T, body []byte) int64 {
	t.Helper()
	var out struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.ID == 0 {
		t.Fatalf("no id in %s", body)
	}
	return out.ID
}

func TestIntegration_SeedScenario(t *testing.T) {
	r := newIntegrationRouter(t)
	token := loginToken(t, r, "alice", "secret1")
	hdr := authHeader(token)

	w := doRequest(r, http.MethodPost, "/api/admin/categories", `{"name":"C1","order":0}`, hdr)
	expectStatus(t, w, http.StatusCreated)
	c1 := decodeID(t, w.Body.Bytes())

	w = doRequest(r, http.MethodPost, "/api/admin/links",
		fmt.Sprintf(`{"name":"L1","url":"https://l1","categoryId":%d,"isActive":true,"order":0}`, c1), hdr)
	expectStatus(t, w, http.StatusCreated)
	l1 := decodeID(t, w.Body.Bytes())

	w = doRequest(r, http.MethodGet, "/api/links", "", nil)
	expectStatus(t, w, http.StatusOK)
	var pub []struct {
		ID    int64 `json:"id"`
		Links []struct {
			ID int64 `json:"id"`
		} `json:"links"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pub); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(pub) != 1 || pub[0].ID != c1 || len(pub[0].Links) != 1 || pub[0].Links[0].ID != l1 {
		t.Fatalf("expected [{C1, [L1]}], got %s", w.Body.String())
	}

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/admin/categories/%d", c1), "", hdr)
	expectStatus(t, w, http.StatusBadRequest)
	if out := decodeError(t, w); out.Error != "Cannot delete category with links" {
		t.Fatalf("unexpected conflict body: %+v", out)
	}

	expectStatus(t, doRequest(r, http.MethodDelete, fmt.Sprintf("/api/admin/links/%d", l1), "", hdr), http.StatusOK)
	expectStatus(t, doRequest(r, http.MethodDelete, fmt.Sprintf("/api/admin/categories/%d", c1), "", hdr), http.StatusOK)
}

func TestIntegration_InvalidLoginsIdentical(t *testing.T) {
	r := newIntegrationRouter(t)

	wrong := doRequest(r, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrongpass"}`, nil)
	ghost := doRequest(r, http.MethodPost, "/api/auth/login", `{"username":"ghost","password":"anything"}`, nil)

	expectStatus(t, wrong, http.StatusUnauthorized)
	expectStatus(t, ghost, http.StatusUnauthorized)
	if wrong.Body.String() != ghost.Body.String() {
		t.Fatalf("responses differ: %s vs %s", wrong.Body.String(), ghost.Body.String())
	}
}

func TestIntegration_Guards(t *testing.T) {
	r := newIntegrationRouter(t)
	userToken := loginToken(t, r, "bob", "secret2")

	w := doRequest(r, http.MethodGet, "/api/admin/links", "", nil)
	expectStatus(t, w, http.StatusUnauthorized)
	if out := decodeError(t, w); out.Error != "Unauthorized: No token provided" {
		t.Fatalf("unexpected body: %+v", out)
	}

	w = doRequest(r, http.MethodGet, "/api/admin/links", "", authHeader("garbage"))
	expectStatus(t, w, http.StatusUnauthorized)
	if out := decodeError(t, w); out.Error != "Unauthorized: Invalid token" {
		t.Fatalf("unexpected body: %+v", out)
	}

	w = doRequest(r, http.MethodGet, "/api/admin/links", "", authHeader(userToken))
	expectStatus(t, w, http.StatusForbidden)
	if out := decodeError(t, w); out.Error != "Forbidden: Admin access required" {
		t.Fatalf("unexpected body: %+v", out)
	}

	// a regular user may still change their own password
	w = doRequest(r, http.MethodPatch, "/api/auth/password",
		`{"currentPassword":"secret2","newPassword":"secret3"}`, authHeader(userToken))
	expectStatus(t, w, http.StatusOK)
	loginToken(t, r, "bob", "secret3")
}

func TestIntegration_InactiveLinksHiddenFromPublic(t *testing.T) {
	r := newIntegrationRouter(t)
	hdr := authHeader(loginToken(t, r, "alice", "secret1"))

	w := doRequest(r, http.MethodPost, "/api/admin/categories", `{"name":"C"}`, hdr)
	c := decodeID(t, w.Body.Bytes())
	doRequest(r, http.MethodPost, "/api/admin/links",
		fmt.Sprintf(`{"name":"off","url":"u","categoryId":%d,"isActive":"true"}`, c), hdr)

	w = doRequest(r, http.MethodGet, "/api/links", "", nil)
	if w.Body.String() != "[]" {
		t.Fatalf("inactive link leaked: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodGet, "/api/admin/links", "", hdr)
	var all []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &all)
	if len(all) != 1 || all[0]["isActive"] != false {
		t.Fatalf("admin listing should include inactive link: %s", w.Body.String())
	}
}
