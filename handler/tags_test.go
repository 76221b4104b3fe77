package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
)

func TestTagsHandlerLifecycle(t *testing.T) {
	conn, admin := newHandlerDB(t)

	h := NewTagsHandler(&repository.Tags{DB: conn}, sessionFor(admin))

	req := httptest.NewRequest("POST", "/admin/tags", strings.NewReader(`{"name":"Go","slug":"go"}`))
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}

	var envelope payload.TagEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if envelope.Message != "Tag created successfully" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}

	req = httptest.NewRequest("POST", "/admin/tags", strings.NewReader(`{"name":"Go","slug":"golang"}`))
	rec = httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusConflict || apiErr.Message != "Tag name already exists" {
		t.Fatalf("expected name conflict, got %+v", apiErr)
	}

	req = httptest.NewRequest("PUT", "/admin/tags/1", strings.NewReader(`{"name":"Golang","slug":"golang"}`))
	req.SetPathValue("id", fmt.Sprintf("%d", envelope.Tag.ID))
	rec = httptest.NewRecorder()

	if apiErr := h.Update(rec, req); apiErr != nil {
		t.Fatalf("update err: %v", apiErr)
	}

	req = httptest.NewRequest("DELETE", "/admin/tags/1", nil)
	req.SetPathValue("id", fmt.Sprintf("%d", envelope.Tag.ID))
	rec = httptest.NewRecorder()

	if apiErr := h.Delete(rec, req); apiErr != nil {
		t.Fatalf("delete err: %v", apiErr)
	}

	var resp payload.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Message != "Tag deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestTagsHandlerDeleteBlockedWhileReferenced(t *testing.T) {
	conn, admin := newHandlerDB(t)

	h := NewTagsHandler(&repository.Tags{DB: conn}, sessionFor(admin))

	req := httptest.NewRequest("POST", "/admin/tags", strings.NewReader(`{"name":"Go","slug":"go"}`))
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr)
	}

	var envelope payload.TagEnvelope
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	postsHandler := NewPostsHandler(&repository.Posts{DB: conn}, sessionFor(admin))
	storePost(t, &postsHandler, fmt.Sprintf(
		`{"title":"Tagged","slug":"tagged","content":"Body","tagIds":[%d]}`,
		envelope.Tag.ID,
	))

	req = httptest.NewRequest("DELETE", "/admin/tags/1", nil)
	req.SetPathValue("id", fmt.Sprintf("%d", envelope.Tag.ID))
	rec = httptest.NewRecorder()

	apiErr := h.Delete(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusBadRequest || apiErr.Message != "Tag has posts assigned. Please remove them first" {
		t.Fatalf("expected integrity rejection, got %+v", apiErr)
	}
}
