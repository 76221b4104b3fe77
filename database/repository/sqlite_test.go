package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
)

func newSQLiteConnection(t *testing.T) (*database.Connection, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(db), db
}

func migrateBlogSchema(t *testing.T, db *gorm.DB) {
	t.Helper()

	err := db.AutoMigrate(
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
}

func seedUser(t *testing.T, conn *database.Connection, name, email, role string) database.User {
	t.Helper()

	user := database.User{
		UUID:         uuid.NewString(),
		Email:        email,
		PasswordHash: "hash",
		Name:         name,
		Role:         role,
	}

	if err := conn.Sql().Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	return user
}

func seedCategory(t *testing.T, conn *database.Connection, name, slug string) database.Category {
	t.Helper()

	category := database.Category{
		UUID: uuid.NewString(),
		Name: name,
		Slug: slug,
	}

	if err := conn.Sql().Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}

	return category
}

func seedTag(t *testing.T, conn *database.Connection, name, slug string) database.Tag {
	t.Helper()

	tag := database.Tag{
		UUID: uuid.NewString(),
		Name: name,
		Slug: slug,
	}

	if err := conn.Sql().Create(&tag).Error; err != nil {
		t.Fatalf("create tag: %v", err)
	}

	return tag
}

func seedPost(t *testing.T, conn *database.Connection, author database.User, slug, title string, published bool, categoryIDs, tagIDs []uint64) database.Post {
	t.Helper()

	postsRepo := repository.Posts{DB: conn}

	post, err := postsRepo.Create(database.PostAttrs{
		AuthorID:    author.ID,
		Title:       title,
		Slug:        slug,
		Content:     title + " content",
		Excerpt:     title + " excerpt",
		Published:   &published,
		CategoryIDs: categoryIDs,
		TagIDs:      tagIDs,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	return *post
}

func seedComment(t *testing.T, conn *database.Connection, post database.Post, author database.User, content string) database.Comment {
	t.Helper()

	commentsRepo := repository.Comments{DB: conn}

	comment, err := commentsRepo.Create(database.CommentAttrs{
		PostID:   post.ID,
		AuthorID: author.ID,
		Content:  content,
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}

	return *comment
}
