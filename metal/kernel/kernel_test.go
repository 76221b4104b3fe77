package kernel

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/metal/env"
	"github.com/ImRehmankhan/nextcodehub/pkg/auth"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

func newTestRouter(t *testing.T) (*Router, *database.Connection) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	err = db.AutoMigrate(
		&database.User{},
		&database.Post{},
		&database.Category{},
		&database.PostCategory{},
		&database.Tag{},
		&database.PostTag{},
		&database.Comment{},
	)
	if err != nil {
		t.Fatalf("migrate schema: %v", err)
	}

	conn := database.NewConnectionFromGorm(db)

	sessions, err := auth.MakeSessionHandler([]byte("0123456789abcdef"), time.Hour)
	if err != nil {
		t.Fatalf("make session handler: %v", err)
	}

	router := &Router{
		Env: &env.Environment{},
		Mux: http.NewServeMux(),
		Db:  conn,
		Pipeline: middleware.Pipeline{
			Sessions: sessions,
		},
	}

	router.Auth()
	router.Posts()
	router.Categories()
	router.Tags()
	router.Comments()
	router.Likes()
	router.Blog()

	return router, conn
}

func loginAs(t *testing.T, router *Router, email, password string) string {
	t.Helper()

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(
		`{"email":"`+email+`","password":"`+password+`"}`,
	))
	rec := httptest.NewRecorder()

	router.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}

	var resp payload.LoginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}

	return resp.Token
}

func TestRouterAdminFlow(t *testing.T) {
	router, conn := newTestRouter(t)

	usersRepo := repository.Users{DB: conn}
	if _, err := usersRepo.Create(database.UserAttrs{
		Email:    "admin@example.test",
		Password: "super-secret",
		Name:     "Admin",
		Role:     database.RoleAdmin,
	}); err != nil {
		t.Fatalf("create admin: %v", err)
	}

	token := loginAs(t, router, "admin@example.test", "super-secret")

	// Admin routes without a token are rejected at the pipeline.
	req := httptest.NewRequest("GET", "/admin/posts", nil)
	rec := httptest.NewRecorder()
	router.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var errResp endpoint.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	if errResp.Error != "Authentication required" || errResp.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected error envelope: %+v", errResp)
	}

	// Authorised create.
	req = httptest.NewRequest("POST", "/admin/posts", strings.NewReader(
		`{"title":"Hello","slug":"hello","content":"Body","published":true}`,
	))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// The published post shows up on the public surface without a token.
	req = httptest.NewRequest("GET", "/posts/hello", nil)
	rec = httptest.NewRecorder()
	router.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var post payload.PostResponse
	if err := json.NewDecoder(rec.Body).Decode(&post); err != nil {
		t.Fatalf("decode post: %v", err)
	}

	if post.Slug != "hello" || post.Views != 1 {
		t.Fatalf("unexpected public post: %+v", post)
	}
}

func TestRouterRejectsNonAdminWrites(t *testing.T) {
	router, conn := newTestRouter(t)

	usersRepo := repository.Users{DB: conn}
	if _, err := usersRepo.Create(database.UserAttrs{
		Email:    "reader@example.test",
		Password: "reader-pass",
		Name:     "Reader",
	}); err != nil {
		t.Fatalf("create reader: %v", err)
	}

	token := loginAs(t, router, "reader@example.test", "reader-pass")

	req := httptest.NewRequest("POST", "/admin/categories", strings.NewReader(
		`{"name":"Tech","slug":"tech"}`,
	))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}

	// But the same token can comment on a published post.
	adminRepo := repository.Users{DB: conn}
	admin, err := adminRepo.Create(database.UserAttrs{
		Email:    "author@example.test",
		Password: "author-pass",
		Name:     "Author",
		Role:     database.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create author: %v", err)
	}

	postsRepo := repository.Posts{DB: conn}
	published := true
	post, err := postsRepo.Create(database.PostAttrs{
		AuthorID:  admin.ID,
		Title:     "Open",
		Slug:      "open",
		Content:   "Body",
		Published: &published,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	req = httptest.NewRequest("POST", "/comments", strings.NewReader(
		`{"postId":`+strconv.FormatUint(post.ID, 10)+`,"content":"hello there"}`,
	))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.Mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
