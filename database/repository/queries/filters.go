package queries

import (
	"gorm.io/gorm"
)

// Sortable (and projectable) columns per resource. Anything outside these
// sets falls back to the defaults in ListParams.
var PostSortable = map[string]bool{
	"id": true, "title": true, "slug": true, "published": true,
	"views": true, "likes": true, "shares": true,
	"created_at": true, "updated_at": true,
}

var CategorySortable = map[string]bool{
	"id": true, "name": true, "slug": true,
	"created_at": true, "updated_at": true,
}

var TagSortable = CategorySortable

// ApplyPostSearch narrows a posts query with a case-insensitive substring
// match over title, content and author name. The given query master table is
// "posts".
func ApplyPostSearch(search string, query *gorm.DB) *gorm.DB {
	if search == "" {
		return query
	}

	needle := "%" + search + "%"

	return query.
		Joins("JOIN users ON users.id = posts.author_id").
		Where(
			"LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ? OR LOWER(users.name) LIKE ?",
			needle, needle, needle,
		)
}

// ApplyNameSlugSearch narrows a categories or tags query with a
// case-insensitive substring match over name and slug.
func ApplyNameSlugSearch(table string, search string, query *gorm.DB) *gorm.DB {
	if search == "" {
		return query
	}

	needle := "%" + search + "%"

	return query.Where(
		"LOWER("+table+".name) LIKE ? OR LOWER("+table+".slug) LIKE ?",
		needle, needle,
	)
}
