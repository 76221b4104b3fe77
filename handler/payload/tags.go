package payload

import (
	"time"

	"github.com/ImRehmankhan/nextcodehub/database"
)

type TagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagResponse struct {
	ID        uint64        `json:"id"`
	UUID      string        `json:"uuid"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Posts     []PostSummary `json:"posts"`
}

type TagEnvelope struct {
	Message string      `json:"message"`
	Tag     TagResponse `json:"tag"`
}

func MakeTagResponse(tag database.Tag) TagResponse {
	posts := make([]PostSummary, 0, len(tag.Posts))
	for _, post := range tag.Posts {
		posts = append(posts, PostSummary{ID: post.ID, Title: post.Title})
	}

	return TagResponse{
		ID:        tag.ID,
		UUID:      tag.UUID,
		Name:      tag.Name,
		Slug:      tag.Slug,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
		Posts:     posts,
	}
}
