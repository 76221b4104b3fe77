package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/pkg/gorm"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

type Users struct {
	DB *database.Connection
}

// FindByEmail returns nil when no account matches: callers translate that
// into the generic credentials error without leaking which field failed.
func (u Users) FindByEmail(email string) *database.User {
	user := database.User{}

	result := u.DB.Sql().
		Where("email = ?", portal.MakeStringable(email).ToLower()).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}

func (u Users) FindByID(id uint64) *database.User {
	user := database.User{}

	result := u.DB.Sql().First(&user, id)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &user
}

func (u Users) Create(attrs database.UserAttrs) (*database.User, error) {
	password, err := portal.NewPassword(attrs.Password)
	if err != nil {
		return nil, fmt.Errorf("issue hashing password: %w", err)
	}

	role := attrs.Role
	if role == "" {
		role = database.RoleUser
	}

	user := database.User{
		UUID:         uuid.NewString(),
		Email:        portal.MakeStringable(attrs.Email).ToLower(),
		PasswordHash: password.GetHash(),
		Name:         attrs.Name,
		Role:         role,
		Avatar:       attrs.Avatar,
		Bio:          attrs.Bio,
	}

	if result := u.DB.Sql().Create(&user); result.Error != nil {
		return nil, fmt.Errorf("issue creating user: %w", result.Error)
	}

	return &user, nil
}
