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

type Tags struct {
	DB *database.Connection
}

func (t Tags) GetAll(params queries.ListParams) (*pagination.Pagination[database.Tag], error) {
	var numItems int64
	var tags []database.Tag

	base := func() *stdgorm.DB {
		query := t.DB.Sql().Model(&database.Tag{})

		return queries.ApplyNameSlugSearch("tags", params.GetSearch(), query)
	}

	if err := pagination.Count[*int64](&numItems, base(), t.DB.GetSession(), "tags.id"); err != nil {
		return nil, fmt.Errorf("issue counting tags: %w", err)
	}

	paginate := params.Paginate()

	err := base().
		Preload("Posts").
		Order(params.OrderClause("tags", queries.TagSortable)).
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&tags).Error

	if err != nil {
		return nil, fmt.Errorf("issue fetching tags: %w", err)
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Tag](tags, paginate), nil
}

func (t Tags) FindByID(id uint64) *database.Tag {
	tag := database.Tag{}

	result := t.DB.Sql().
		Preload("Posts").
		First(&tag, id)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &tag
}

func (t Tags) Project(params queries.ListParams) ([]map[string]any, error) {
	columns := params.SafeColumns(queries.TagSortable)
	if len(columns) == 0 {
		columns = []string{"id", "name"}
	}

	var rows []map[string]any

	err := t.DB.Sql().
		Model(&database.Tag{}).
		Select(columns).
		Order(params.OrderClause("tags", queries.TagSortable)).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("issue projecting tags: %w", err)
	}

	return rows, nil
}

func (t Tags) NameTaken(name string, excludeID uint64) (bool, error) {
	return t.taken("name", name, excludeID)
}

func (t Tags) SlugTaken(slug string, excludeID uint64) (bool, error) {
	return t.taken("slug", slug, excludeID)
}

func (t Tags) taken(column, value string, excludeID uint64) (bool, error) {
	var count int64

	query := t.DB.Sql().
		Model(&database.Tag{}).
		Where(column+" = ?", value)

	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("issue checking tag %s: %w", column, err)
	}

	return count > 0, nil
}

func (t Tags) Create(attrs database.TagAttrs) (*database.Tag, error) {
	tag := database.Tag{
		UUID: uuid.NewString(),
		Name: attrs.Name,
		Slug: attrs.Slug,
	}

	if result := t.DB.Sql().Create(&tag); result.Error != nil {
		return nil, fmt.Errorf("issue creating tag: %w", result.Error)
	}

	return &tag, nil
}

func (t Tags) Update(id uint64, attrs database.TagAttrs) (*database.Tag, error) {
	tag := database.Tag{}

	if result := t.DB.Sql().First(&tag, id); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue loading tag [%d]: %w", id, result.Error)
	}

	tag.Name = attrs.Name
	tag.Slug = attrs.Slug

	if result := t.DB.Sql().Save(&tag); result.Error != nil {
		return nil, fmt.Errorf("issue updating tag [%d]: %w", id, result.Error)
	}

	return &tag, nil
}

// PostsCount reports how many posts are linked to the given tag. Deletion is
// blocked while this is non-zero.
func (t Tags) PostsCount(tagID uint64) (int64, error) {
	var count int64

	err := t.DB.Sql().
		Model(&database.PostTag{}).
		Where("tag_id = ?", tagID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("issue counting tag posts: %w", err)
	}

	return count, nil
}

func (t Tags) Delete(id uint64) error {
	result := t.DB.Sql().Delete(&database.Tag{}, id)

	if result.Error != nil {
		return fmt.Errorf("issue deleting tag [%d]: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("tag [%d] not found", id)
	}

	return nil
}
