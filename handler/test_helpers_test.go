package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/pkg/auth"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

func newHandlerDB(t *testing.T) (*database.Connection, database.User) {
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

	admin := database.User{
		UUID:         uuid.NewString(),
		Email:        "admin@example.test",
		PasswordHash: "hash",
		Name:         "Admin",
		Role:         database.RoleAdmin,
	}

	if err := conn.Sql().Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}

	return conn, admin
}

func sessionFor(user database.User) middleware.SessionResolver {
	return func(ctx context.Context) (*auth.SessionUser, error) {
		return &auth.SessionUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		}, nil
	}
}

func noSession() middleware.SessionResolver {
	return middleware.ResolveSession
}

func seedReader(t *testing.T, conn *database.Connection, email string) database.User {
	t.Helper()

	reader := database.User{
		UUID:         uuid.NewString(),
		Email:        email,
		PasswordHash: "hash",
		Name:         "Reader",
		Role:         database.RoleUser,
	}

	if err := conn.Sql().Create(&reader).Error; err != nil {
		t.Fatalf("create reader: %v", err)
	}

	return reader
}
