package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
)

func storeCategory(t *testing.T, h *CategoriesHandler, body string) payload.CategoryEnvelope {
	t.Helper()

	req := httptest.NewRequest("POST", "/admin/categories", strings.NewReader(body))
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}

	var envelope payload.CategoryEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return envelope
}

func TestCategoriesHandlerStoreAndConflicts(t *testing.T) {
	conn, admin := newHandlerDB(t)

	h := NewCategoriesHandler(&repository.Categories{DB: conn}, sessionFor(admin))

	envelope := storeCategory(t, &h, `{"name":"Tech","slug":"tech"}`)

	if envelope.Message != "Category created successfully" || envelope.Category.Slug != "tech" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}

	cases := []struct {
		body    string
		status  int
		message string
	}{
		{`{"slug":"x"}`, http.StatusBadRequest, "Name is required"},
		{`{"name":"X"}`, http.StatusBadRequest, "Slug is required"},
		{`{"name":"Tech","slug":"other"}`, http.StatusConflict, "Category name already exists"},
		{`{"name":"Other","slug":"tech"}`, http.StatusConflict, "Category slug already exists"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/admin/categories", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()

		apiErr := h.Store(rec, req)
		if apiErr == nil || apiErr.Status != tc.status || apiErr.Message != tc.message {
			t.Fatalf("expected %d %q, got %+v", tc.status, tc.message, apiErr)
		}
	}
}

func TestCategoriesHandlerUpdateKeepsOwnValues(t *testing.T) {
	conn, admin := newHandlerDB(t)

	h := NewCategoriesHandler(&repository.Categories{DB: conn}, sessionFor(admin))

	created := storeCategory(t, &h, `{"name":"Tech","slug":"tech"}`)

	// Re-submitting a record's own name and slug is not a conflict.
	req := httptest.NewRequest("PUT", "/admin/categories/1", strings.NewReader(`{"name":"Tech","slug":"tech"}`))
	req.SetPathValue("id", fmt.Sprintf("%d", created.Category.ID))
	rec := httptest.NewRecorder()

	if apiErr := h.Update(rec, req); apiErr != nil {
		t.Fatalf("update err: %v", apiErr)
	}

	var envelope payload.CategoryEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if envelope.Message != "Category updated successfully" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestCategoriesHandlerDeleteBlockedWhileReferenced(t *testing.T) {
	conn, admin := newHandlerDB(t)

	h := NewCategoriesHandler(&repository.Categories{DB: conn}, sessionFor(admin))

	created := storeCategory(t, &h, `{"name":"Tech","slug":"tech"}`)

	postsHandler := NewPostsHandler(&repository.Posts{DB: conn}, sessionFor(admin))
	storePost(t, &postsHandler, fmt.Sprintf(
		`{"title":"Linked","slug":"linked","content":"Body","categoryIds":[%d]}`,
		created.Category.ID,
	))

	req := httptest.NewRequest("DELETE", "/admin/categories/1", nil)
	req.SetPathValue("id", fmt.Sprintf("%d", created.Category.ID))
	rec := httptest.NewRecorder()

	apiErr := h.Delete(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusBadRequest || apiErr.Message != "Category has posts assigned. Please remove them first" {
		t.Fatalf("expected integrity rejection, got %+v", apiErr)
	}

	if err := conn.Sql().Where("category_id = ?", created.Category.ID).Delete(&database.PostCategory{}).Error; err != nil {
		t.Fatalf("unlink posts: %v", err)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", "/admin/categories/1", nil)
	req.SetPathValue("id", fmt.Sprintf("%d", created.Category.ID))

	if apiErr := h.Delete(rec, req); apiErr != nil {
		t.Fatalf("delete err: %v", apiErr)
	}

	var resp payload.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Message != "Category deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestCategoriesHandlerIndexListsWithPosts(t *testing.T) {
	conn, admin := newHandlerDB(t)

	h := NewCategoriesHandler(&repository.Categories{DB: conn}, sessionFor(admin))

	created := storeCategory(t, &h, `{"name":"Tech","slug":"tech"}`)
	storeCategory(t, &h, `{"name":"Life","slug":"life"}`)

	postsHandler := NewPostsHandler(&repository.Posts{DB: conn}, sessionFor(admin))
	storePost(t, &postsHandler, fmt.Sprintf(
		`{"title":"Linked","slug":"linked","content":"Body","categoryIds":[%d]}`,
		created.Category.ID,
	))

	req := httptest.NewRequest("GET", "/admin/categories?search=tech", nil)
	rec := httptest.NewRecorder()

	if apiErr := h.Index(rec, req); apiErr != nil {
		t.Fatalf("index err: %v", apiErr)
	}

	var list pagination.Pagination[payload.CategoryResponse]
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if list.Total != 1 || len(list.Data) != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}

	if len(list.Data[0].Posts) != 1 || list.Data[0].Posts[0].Title != "Linked" {
		t.Fatalf("expected linked post summaries: %+v", list.Data[0].Posts)
	}
}
