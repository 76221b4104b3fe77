package repository_test

import (
	"testing"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

func TestUsersCreateHashesPasswordSQLite(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	migrateBlogSchema(t, db)

	usersRepo := repository.Users{DB: conn}

	user, err := usersRepo.Create(database.UserAttrs{
		Email:    "Admin@Example.Test",
		Password: "super-secret",
		Name:     "Admin",
		Role:     database.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	if user.Email != "admin@example.test" {
		t.Fatalf("expected normalised email, got %q", user.Email)
	}

	if user.PasswordHash == "super-secret" {
		t.Fatalf("expected hashed password")
	}

	if !portal.NewPasswordFromHash(user.PasswordHash).Is("super-secret") {
		t.Fatalf("expected hash to verify original password")
	}

	if !user.IsAdmin() {
		t.Fatalf("expected admin role")
	}
}

func TestUsersFindByEmailSQLite(t *testing.T) {
	conn, db := newSQLiteConnection(t)
	migrateBlogSchema(t, db)

	seeded := seedUser(t, conn, "Uma", "uma@example.test", database.RoleUser)

	usersRepo := repository.Users{DB: conn}

	if found := usersRepo.FindByEmail("UMA@example.test"); found == nil || found.ID != seeded.ID {
		t.Fatalf("expected case-insensitive email lookup")
	}

	if usersRepo.FindByEmail("nobody@example.test") != nil {
		t.Fatalf("expected nil for unknown email")
	}

	if found := usersRepo.FindByID(seeded.ID); found == nil || found.Email != seeded.Email {
		t.Fatalf("expected lookup by id")
	}

	if usersRepo.FindByID(9999) != nil {
		t.Fatalf("expected nil for unknown id")
	}
}
