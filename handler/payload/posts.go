package payload

import (
	"time"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
)

type PostRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	FeaturedImage string   `json:"featuredImage"`
	ReadTime      string   `json:"readTime"`
	MetaTitle     string   `json:"metaTitle"`
	MetaDesc      string   `json:"metaDesc"`
	OgImage       string   `json:"ogImage"`
	CanonicalURL  string   `json:"canonicalUrl"`
	Published     *bool    `json:"published"`
	CategoryIDs   []uint64 `json:"categoryIds"`
	TagIDs        []uint64 `json:"tagIds"`
}

type PostResponse struct {
	ID            uint64            `json:"id"`
	UUID          string            `json:"uuid"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Content       string            `json:"content"`
	Excerpt       string            `json:"excerpt,omitempty"`
	FeaturedImage string            `json:"featuredImage,omitempty"`
	ReadTime      string            `json:"readTime,omitempty"`
	MetaTitle     string            `json:"metaTitle,omitempty"`
	MetaDesc      string            `json:"metaDesc,omitempty"`
	OgImage       string            `json:"ogImage,omitempty"`
	CanonicalURL  string            `json:"canonicalUrl,omitempty"`
	Published     bool              `json:"published"`
	Views         uint64            `json:"views"`
	Likes         int64             `json:"likes"`
	Shares        uint64            `json:"shares"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	Author        UserResponse      `json:"author"`
	Categories    []CategorySummary `json:"categories"`
	Tags          []TagSummary      `json:"tags"`
}

// PostSummary is the reduced post view embedded in category and tag
// responses.
type PostSummary struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

type CategorySummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagSummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PostEnvelope struct {
	Message string       `json:"message"`
	Post    PostResponse `json:"post"`
}

type PostsIndexResponse struct {
	*pagination.Pagination[PostResponse]
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

func MakePostResponse(post database.Post) PostResponse {
	categories := make([]CategorySummary, 0, len(post.Categories))
	for _, category := range post.Categories {
		categories = append(categories, CategorySummary{
			ID:   category.ID,
			Name: category.Name,
			Slug: category.Slug,
		})
	}

	tags := make([]TagSummary, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tags = append(tags, TagSummary{
			ID:   tag.ID,
			Name: tag.Name,
			Slug: tag.Slug,
		})
	}

	return PostResponse{
		ID:            post.ID,
		UUID:          post.UUID,
		Title:         post.Title,
		Slug:          post.Slug,
		Content:       post.Content,
		Excerpt:       post.Excerpt,
		FeaturedImage: post.FeaturedImage,
		ReadTime:      post.ReadTime,
		MetaTitle:     post.MetaTitle,
		MetaDesc:      post.MetaDesc,
		OgImage:       post.OgImage,
		CanonicalURL:  post.CanonicalURL,
		Published:     post.Published,
		Views:         post.Views,
		Likes:         post.Likes,
		Shares:        post.Shares,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		Author:        MakeUserResponse(post.Author),
		Categories:    categories,
		Tags:          tags,
	}
}

func MakePostsIndexResponse(result *pagination.Pagination[database.Post], counts *repository.PostCounts) PostsIndexResponse {
	return PostsIndexResponse{
		Pagination: pagination.HydratePagination(result, MakePostResponse),
		Published:  counts.Published,
		Draft:      counts.Draft,
	}
}

func (r PostRequest) Attrs(authorID uint64) database.PostAttrs {
	return database.PostAttrs{
		AuthorID:      authorID,
		Title:         r.Title,
		Slug:          r.Slug,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		FeaturedImage: r.FeaturedImage,
		ReadTime:      r.ReadTime,
		MetaTitle:     r.MetaTitle,
		MetaDesc:      r.MetaDesc,
		OgImage:       r.OgImage,
		CanonicalURL:  r.CanonicalURL,
		Published:     r.Published,
		CategoryIDs:   r.CategoryIDs,
		TagIDs:        r.TagIDs,
	}
}
