package payload

import (
	"time"

	"github.com/ImRehmankhan/nextcodehub/database"
)

type CommentRequest struct {
	PostID  uint64 `json:"postId"`
	Content string `json:"content"`
}

type CommentResponse struct {
	ID        uint64        `json:"id"`
	UUID      string        `json:"uuid"`
	PostID    uint64        `json:"postId"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    CommentAuthor `json:"author"`
}

type CommentEnvelope struct {
	Message string          `json:"message"`
	Comment CommentResponse `json:"comment"`
}

func MakeCommentResponse(comment database.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		UUID:      comment.UUID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		Author:    MakeCommentAuthor(comment.Author),
	}
}
