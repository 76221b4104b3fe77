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

func applyLike(t *testing.T, h *LikesHandler, body string) payload.LikeResponse {
	t.Helper()

	req := httptest.NewRequest("POST", "/likes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	if apiErr := h.Store(rec, req); apiErr != nil {
		t.Fatalf("store err: %v", apiErr)
	}

	var resp payload.LikeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return resp
}

func TestLikesHandlerAccumulates(t *testing.T) {
	conn, admin := newHandlerDB(t)

	reader := seedReader(t, conn, "reader@example.test")

	postsHandler := NewPostsHandler(&repository.Posts{DB: conn}, sessionFor(admin))
	post := storePost(t, &postsHandler, `{"title":"Liked","slug":"liked","content":"Body","published":true}`)

	h := NewLikesHandler(&repository.Posts{DB: conn}, &repository.Users{DB: conn}, sessionFor(reader))

	body := fmt.Sprintf(`{"postId":%d}`, post.Post.ID)

	resp := applyLike(t, &h, body)
	if resp.Likes != 1 || resp.Message != "Post liked successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	// The same caller liking twice counts twice.
	resp = applyLike(t, &h, body)
	if resp.Likes != 2 {
		t.Fatalf("expected accumulated likes, got %d", resp.Likes)
	}

	resp = applyLike(t, &h, fmt.Sprintf(`{"postId":%d,"action":"dislike"}`, post.Post.ID))
	if resp.Likes != 1 || resp.Message != "Post disliked successfully" {
		t.Fatalf("unexpected dislike response: %+v", resp)
	}
}

func TestLikesHandlerValidation(t *testing.T) {
	conn, admin := newHandlerDB(t)

	reader := seedReader(t, conn, "reader@example.test")

	postsHandler := NewPostsHandler(&repository.Posts{DB: conn}, sessionFor(admin))
	post := storePost(t, &postsHandler, `{"title":"Liked","slug":"liked","content":"Body","published":true}`)

	h := NewLikesHandler(&repository.Posts{DB: conn}, &repository.Users{DB: conn}, sessionFor(reader))

	req := httptest.NewRequest("POST", "/likes", strings.NewReader(
		fmt.Sprintf(`{"postId":%d,"action":"boost"}`, post.Post.ID),
	))
	rec := httptest.NewRecorder()

	apiErr := h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusBadRequest || apiErr.Message != "Invalid action" {
		t.Fatalf("expected action validation, got %+v", apiErr)
	}

	req = httptest.NewRequest("POST", "/likes", strings.NewReader(`{"postId":9999}`))
	rec = httptest.NewRecorder()

	apiErr = h.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusNotFound || apiErr.Message != "Post not found" {
		t.Fatalf("expected missing post rejection, got %+v", apiErr)
	}

	anonymous := NewLikesHandler(&repository.Posts{DB: conn}, &repository.Users{DB: conn}, noSession())

	req = httptest.NewRequest("POST", "/likes", strings.NewReader(`{"postId":1}`))
	rec = httptest.NewRecorder()

	apiErr = anonymous.Store(rec, req)
	if apiErr == nil || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous like, got %+v", apiErr)
	}
}
