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

type Categories struct {
	DB *database.Connection
}

// GetAll returns one page of categories matching the given params, plus the
// filtered total.
func (c Categories) GetAll(params queries.ListParams) (*pagination.Pagination[database.Category], error) {
	var numItems int64
	var categories []database.Category

	base := func() *stdgorm.DB {
		query := c.DB.Sql().Model(&database.Category{})

		return queries.ApplyNameSlugSearch("categories", params.GetSearch(), query)
	}

	if err := pagination.Count[*int64](&numItems, base(), c.DB.GetSession(), "categories.id"); err != nil {
		return nil, fmt.Errorf("issue counting categories: %w", err)
	}

	paginate := params.Paginate()

	err := base().
		Preload("Posts").
		Order(params.OrderClause("categories", queries.CategorySortable)).
		Limit(paginate.Limit).
		Offset(paginate.GetOffset()).
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("issue fetching categories: %w", err)
	}

	paginate.SetNumItems(numItems)

	return pagination.MakePagination[database.Category](categories, paginate), nil
}

func (c Categories) FindByID(id uint64) *database.Category {
	category := database.Category{}

	result := c.DB.Sql().
		Preload("Posts").
		First(&category, id)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return &category
}

func (c Categories) Project(params queries.ListParams) ([]map[string]any, error) {
	columns := params.SafeColumns(queries.CategorySortable)
	if len(columns) == 0 {
		columns = []string{"id", "name"}
	}

	var rows []map[string]any

	err := c.DB.Sql().
		Model(&database.Category{}).
		Select(columns).
		Order(params.OrderClause("categories", queries.CategorySortable)).
		Find(&rows).Error

	if err != nil {
		return nil, fmt.Errorf("issue projecting categories: %w", err)
	}

	return rows, nil
}

// NameTaken reports whether another category already claims the given name.
// The comparison is exact, matching the unique index.
func (c Categories) NameTaken(name string, excludeID uint64) (bool, error) {
	return c.taken("name", name, excludeID)
}

func (c Categories) SlugTaken(slug string, excludeID uint64) (bool, error) {
	return c.taken("slug", slug, excludeID)
}

func (c Categories) taken(column, value string, excludeID uint64) (bool, error) {
	var count int64

	query := c.DB.Sql().
		Model(&database.Category{}).
		Where(column+" = ?", value)

	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("issue checking category %s: %w", column, err)
	}

	return count > 0, nil
}

func (c Categories) Create(attrs database.CategoryAttrs) (*database.Category, error) {
	category := database.Category{
		UUID: uuid.NewString(),
		Name: attrs.Name,
		Slug: attrs.Slug,
	}

	if result := c.DB.Sql().Create(&category); result.Error != nil {
		return nil, fmt.Errorf("issue creating category: %w", result.Error)
	}

	return &category, nil
}

func (c Categories) Update(id uint64, attrs database.CategoryAttrs) (*database.Category, error) {
	category := database.Category{}

	if result := c.DB.Sql().First(&category, id); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue loading category [%d]: %w", id, result.Error)
	}

	category.Name = attrs.Name
	category.Slug = attrs.Slug

	if result := c.DB.Sql().Save(&category); result.Error != nil {
		return nil, fmt.Errorf("issue updating category [%d]: %w", id, result.Error)
	}

	return &category, nil
}

// PostsCount reports how many posts are linked to the given category.
// Deletion is blocked while this is non-zero.
func (c Categories) PostsCount(categoryID uint64) (int64, error) {
	var count int64

	err := c.DB.Sql().
		Model(&database.PostCategory{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("issue counting category posts: %w", err)
	}

	return count, nil
}

func (c Categories) Delete(id uint64) error {
	result := c.DB.Sql().Delete(&database.Category{}, id)

	if result.Error != nil {
		return fmt.Errorf("issue deleting category [%d]: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("category [%d] not found", id)
	}

	return nil
}
