package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ImRehmankhan/nextcodehub/database"
)

type Comments struct {
	DB *database.Connection
}

// GetForPost returns the published comments of a post, newest first, with
// their authors loaded.
func (c Comments) GetForPost(postID uint64) ([]database.Comment, error) {
	var comments []database.Comment

	err := c.DB.Sql().
		Preload("Author").
		Where("post_id = ? AND published = ?", postID, true).
		Order("created_at desc").
		Find(&comments).Error

	if err != nil {
		return nil, fmt.Errorf("issue fetching comments: %w", err)
	}

	return comments, nil
}

// Create stores a new published comment and returns it with its author
// loaded.
func (c Comments) Create(attrs database.CommentAttrs) (*database.Comment, error) {
	comment := database.Comment{
		UUID:      uuid.NewString(),
		PostID:    attrs.PostID,
		AuthorID:  attrs.AuthorID,
		Content:   attrs.Content,
		Published: true,
	}

	if result := c.DB.Sql().Create(&comment); result.Error != nil {
		return nil, fmt.Errorf("issue creating comment: %w", result.Error)
	}

	if err := c.DB.Sql().Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, fmt.Errorf("issue loading comment author: %w", err)
	}

	return &comment, nil
}
