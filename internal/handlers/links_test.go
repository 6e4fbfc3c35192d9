package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"linkhub/internal/apperr"
	"linkhub/internal/models"
	"linkhub/internal/service"
)

func TestLinkHandlers_Success(t *testing.T) {
	cat := &mockCatalog{
		link:  &models.Link{ID: 4, Name: "GitHub", URL: "https://github.com", CategoryID: 1, IsActive: true},
		links: []models.Link{{ID: 4}},
	}
	r := newTestRouter(adminService(cat))
	hdr := authHeader("t")

	expectStatus(t, doRequest(r, http.MethodGet, "/api/admin/links", "", hdr), http.StatusOK)
	expectStatus(t, doRequest(r, http.MethodGet, "/api/admin/links/4", "", hdr), http.StatusOK)

	w := doRequest(r, http.MethodPost, "/api/admin/links",
		`{"name":"GitHub","url":"https://github.com","categoryId":1,"isActive":true,"tag":"SHOPEE"}`, hdr)
	expectStatus(t, w, http.StatusCreated)
	in := cat.lastLink
	if in.Name != "GitHub" || in.CategoryID != 1 || in.IsActive != true || in.Tag != "SHOPEE" || in.Order != nil {
		t.Fatalf("unexpected input: %+v", in)
	}

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["categoryId"] != float64(1) || body["isActive"] != true {
		t.Fatalf("unexpected JSON: %s", w.Body.String())
	}

	w = doRequest(r, http.MethodPut, "/api/admin/links/4",
		`{"name":"GH","url":"u","categoryId":"2","isActive":"true","order":3}`, hdr)
	expectStatus(t, w, http.StatusOK)
	if cat.lastID != 4 || cat.lastLink.CategoryID != 2 || cat.lastLink.IsActive != "true" || *cat.lastLink.Order != 3 {
		t.Fatalf("unexpected update input: %+v", cat.lastLink)
	}

	expectStatus(t, doRequest(r, http.MethodDelete, "/api/admin/links/4", "", hdr), http.StatusOK)
}

func TestLinkHandlers_Errors(t *testing.T) {
	hdr := authHeader("t")
	cases := []struct {
		name   string
		method string
		path   string
		body   string
		err    error
		code   int
	}{
		{"bad id", http.MethodDelete, "/api/admin/links/0", "", nil, http.StatusBadRequest},
		{"missing fields", http.MethodPost, "/api/admin/links", `{"name":"x"}`, apperr.Validation(service.MsgLinkFieldsRequired), http.StatusBadRequest},
		{"unknown category", http.MethodPost, "/api/admin/links", `{"name":"x","url":"u","categoryId":99}`, apperr.NotFound(service.MsgCategoryNotFound), http.StatusNotFound},
		{"missing link", http.MethodPut, "/api/admin/links/5", `{"name":"x","url":"u","categoryId":1}`, apperr.NotFound(service.MsgLinkNotFound), http.StatusNotFound},
		{"malformed json", http.MethodPost, "/api/admin/links", `[`, nil, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(newTestRouter(adminService(&mockCatalog{err: tc.err})), tc.method, tc.path, tc.body, hdr)
			expectStatus(t, w, tc.code)
		})
	}
}

func TestCoerceID(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{float64(3), 3},
		{float64(2.5), 0},
		{float64(-1), 0},
		{"42", 42},
		{" 7 ", 7},
		{"abc", 0},
		{json.Number("12"), 12},
		{nil, 0},
		{true, 0},
		{float64(math.MaxInt64), 0},
		{float64(1 << 62), 1 << 62},
	}
	for _, tc := range cases {
		if got := coerceID(tc.in); got != tc.want {
			t.Errorf("coerceID(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
