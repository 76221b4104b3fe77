package payload

import (
	"time"

	"github.com/ImRehmankhan/nextcodehub/database"
)

type CategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryResponse struct {
	ID        uint64        `json:"id"`
	UUID      string        `json:"uuid"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Posts     []PostSummary `json:"posts"`
}

type CategoryEnvelope struct {
	Message  string           `json:"message"`
	Category CategoryResponse `json:"category"`
}

func MakeCategoryResponse(category database.Category) CategoryResponse {
	posts := make([]PostSummary, 0, len(category.Posts))
	for _, post := range category.Posts {
		posts = append(posts, PostSummary{ID: post.ID, Title: post.Title})
	}

	return CategoryResponse{
		ID:        category.ID,
		UUID:      category.UUID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
		Posts:     posts,
	}
}
