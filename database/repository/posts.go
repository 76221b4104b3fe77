package repository

import (
	"fmt"

	"github.com/google/uuid"
	stdgorm "gorm.io/gorm"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
	"github.com/ImRehmankhan/nextcodehub/database/repository/queries"
	"github.com/ImRehmankhan/nextcodehub/pkg/gorm"
)

const LikeAction = "like"
const DislikeAction = "dislike"

type Posts struct {
	DB *database.Connection
}

// PostCounts reports how many posts match the active filter, split by
// publication state. All three numbers are computed under the same predicate.
type PostCounts struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
}

// GetAll returns one page of posts matching the given params, together with
// the filtered totals the dashboard needs for its page count and status cards.
func (p Posts) GetAll(params queries.ListParams) (*pagination.Pagination[database.Post], *PostCounts, error) {
	var posts []database.Post
	counts := PostCounts{}

	base := func() *stdgorm.DB {
		query := p.DB.Sql().Model(&database.Post{})

		return queries.ApplyPostSearch(params.GetSearch(), query)
	}

	if err := pagination.Count[*int64](&counts.Total, base(), p.DB.GetSession(), "posts.id"); err != nil {
		return nil, nil, fmt.Errorf("issue counting posts: %w", err)
	}

	published := base().Where("posts.published = ?", true)
	if err := pagination.Count[*int64](&counts.Published, published, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, nil, fmt.Errorf("issue counting published posts: %w", err)
	}

	draft := base().Where("posts.published = ?", false)
	if err := pagination.Count[*int64](&counts.Draft, draft, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, nil, fmt.Errorf("issue counting draft posts: %w", err)
	}

	paginate := params.Paginate()

	err := base().
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Order(params.OrderClause("posts", queries.PostSortable)).
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&posts).Error

	if err != nil {
		return nil, nil, fmt.Errorf("issue fetching posts: %w", err)
	}

	paginate.SetNumItems(counts.Total)
	result := pagination.MakePagination[database.Post](posts, paginate)

	return result, &counts, nil
}

// FindByID loads one post with its full relation graph for edit-form
// population. It returns nil when the id is unknown.
func (p Posts) FindByID(id uint64) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		First(&post, id)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// Project returns a relation-free, unpaginated listing restricted to the
// given columns. Used to populate selection widgets.
func (p Posts) Project(params queries.ListParams) ([]map[string]any, error) {
	columns := params.SafeColumns(queries.PostSortable)
	if len(columns) == 0 {
		columns = []string{"id", "title"}
	}

	var rows []map[string]any

	err := p.DB.Sql().
		Model(&database.Post{}).
		Select(columns).
		Order(params.OrderClause("posts", queries.PostSortable)).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("issue projecting posts: %w", err)
	}

	return rows, nil
}

// GetPublished returns one page of published posts, newest first, for the
// public blog surface.
func (p Posts) GetPublished(paginate pagination.Paginate) (*pagination.Pagination[database.Post], error) {
	var numItems int64
	var posts []database.Post

	query := p.DB.Sql().
		Model(&database.Post{}).
		Where("posts.published = ?", true)

	if err := pagination.Count[*int64](&numItems, query, p.DB.GetSession(), "posts.id"); err != nil {
		return nil, err
	}

	err := query.
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Order("posts.created_at desc").
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&posts).Error

	if err != nil {
		return nil, err
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Post](posts, paginate), nil
}

// FindPublishedBySlug loads a published post for the public article page.
func (p Posts) FindPublishedBySlug(slug string) *database.Post {
	post := database.Post{}

	result := p.DB.Sql().
		Preload("Author").
		Preload("Categories").
		Preload("Tags").
		Where("slug = ? AND published = ?", slug, true).
		First(&post)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &post
}

// SlugTaken reports whether another post already claims the given slug.
func (p Posts) SlugTaken(slug string, excludeID uint64) (bool, error) {
	var count int64

	query := p.DB.Sql().
		Model(&database.Post{}).
		Where("slug = ?", slug)

	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("issue checking post slug: %w", err)
	}

	return count > 0, nil
}

func (p Posts) Create(attrs database.PostAttrs) (*database.Post, error) {
	published := false
	if attrs.Published != nil {
		published = *attrs.Published
	}

	post := database.Post{
		UUID:          uuid.NewString(),
		AuthorID:      attrs.AuthorID,
		Title:         attrs.Title,
		Slug:          attrs.Slug,
		Content:       attrs.Content,
		Excerpt:       attrs.Excerpt,
		FeaturedImage: attrs.FeaturedImage,
		ReadTime:      attrs.ReadTime,
		MetaTitle:     attrs.MetaTitle,
		MetaDesc:      attrs.MetaDesc,
		OgImage:       attrs.OgImage,
		CanonicalURL:  attrs.CanonicalURL,
		Published:     published,
	}

	err := p.DB.Transaction(func(db *stdgorm.DB) error {
		if result := db.Create(&post); result.Error != nil {
			return fmt.Errorf("issue creating post: %w", result.Error)
		}

		return linkAssociations(db, post.ID, attrs.CategoryIDs, attrs.TagIDs)
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(post.ID), nil
}

// Update persists the given fields and replaces the category/tag associations
// with exactly the provided id sets: omitting a previously linked id removes
// that link.
func (p Posts) Update(id uint64, attrs database.PostAttrs) (*database.Post, error) {
	post := database.Post{}

	if result := p.DB.Sql().First(&post, id); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue loading post [%d]: %w", id, result.Error)
	}

	post.Title = attrs.Title
	post.Slug = attrs.Slug
	post.Content = attrs.Content
	post.Excerpt = attrs.Excerpt
	post.FeaturedImage = attrs.FeaturedImage
	post.ReadTime = attrs.ReadTime
	post.MetaTitle = attrs.MetaTitle
	post.MetaDesc = attrs.MetaDesc
	post.OgImage = attrs.OgImage
	post.CanonicalURL = attrs.CanonicalURL

	if attrs.Published != nil {
		post.Published = *attrs.Published
	}

	err := p.DB.Transaction(func(db *stdgorm.DB) error {
		if result := db.Save(&post); result.Error != nil {
			return fmt.Errorf("issue updating post [%d]: %w", id, result.Error)
		}

		if result := db.Where("post_id = ?", id).Delete(&database.PostCategory{}); result.Error != nil {
			return fmt.Errorf("issue unlinking post categories: %w", result.Error)
		}

		if result := db.Where("post_id = ?", id).Delete(&database.PostTag{}); result.Error != nil {
			return fmt.Errorf("issue unlinking post tags: %w", result.Error)
		}

		return linkAssociations(db, id, attrs.CategoryIDs, attrs.TagIDs)
	})

	if err != nil {
		return nil, err
	}

	return p.FindByID(id), nil
}

// CommentsCount reports how many comments reference the given post. Deletion
// is blocked while this is non-zero.
func (p Posts) CommentsCount(postID uint64) (int64, error) {
	var count int64

	err := p.DB.Sql().
		Model(&database.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("issue counting post comments: %w", err)
	}

	return count, nil
}

// Delete removes the post and its category/tag associations. Callers are
// expected to have run the comments integrity check first.
func (p Posts) Delete(id uint64) error {
	return p.DB.Transaction(func(db *stdgorm.DB) error {
		if result := db.Where("post_id = ?", id).Delete(&database.PostCategory{}); result.Error != nil {
			return fmt.Errorf("issue unlinking post categories: %w", result.Error)
		}

		if result := db.Where("post_id = ?", id).Delete(&database.PostTag{}); result.Error != nil {
			return fmt.Errorf("issue unlinking post tags: %w", result.Error)
		}

		result := db.Delete(&database.Post{}, id)
		if result.Error != nil {
			return fmt.Errorf("issue deleting post [%d]: %w", id, result.Error)
		}

		if result.RowsAffected == 0 {
			return fmt.Errorf("post [%d] not found", id)
		}

		return nil
	})
}

// IncrementViews bumps the views counter atomically in the database. Lost
// updates under concurrent page views are not possible: the increment is a
// single UPDATE expression.
func (p Posts) IncrementViews(id uint64) error {
	result := p.DB.Sql().
		Model(&database.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", stdgorm.Expr("views + 1"))

	if result.Error != nil {
		return fmt.Errorf("issue incrementing post views: %w", result.Error)
	}

	return nil
}

// ApplyLike atomically moves the likes counter by one in either direction and
// returns the resulting value. There is no per-user dedup state: repeated
// calls accumulate.
func (p Posts) ApplyLike(id uint64, action string) (int64, error) {
	expr := stdgorm.Expr("likes + 1")
	if action == DislikeAction {
		expr = stdgorm.Expr("likes - 1")
	}

	result := p.DB.Sql().
		Model(&database.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes", expr)

	if result.Error != nil {
		return 0, fmt.Errorf("issue updating post likes: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("post [%d] not found", id)
	}

	post := database.Post{}
	if err := p.DB.Sql().Select("likes").First(&post, id).Error; err != nil {
		return 0, fmt.Errorf("issue reading post likes: %w", err)
	}

	return post.Likes, nil
}

func linkAssociations(db *stdgorm.DB, postID uint64, categoryIDs, tagIDs []uint64) error {
	for _, categoryID := range categoryIDs {
		trace := database.PostCategory{PostID: postID, CategoryID: categoryID}

		if result := db.Create(&trace); result.Error != nil {
			return fmt.Errorf("issue linking category [%d:%d]: %w", categoryID, postID, result.Error)
		}
	}

	for _, tagID := range tagIDs {
		trace := database.PostTag{PostID: postID, TagID: tagID}

		if result := db.Create(&trace); result.Error != nil {
			return fmt.Errorf("issue linking tag [%d:%d]: %w", tagID, postID, result.Error)
		}
	}

	return nil
}
