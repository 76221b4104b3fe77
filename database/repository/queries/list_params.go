package queries

import (
	"fmt"

	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

const defaultSortBy = "id"
const defaultSortOrder = "desc"

// ListParams carries every query-string knob an admin listing endpoint
// understands. A non-zero ID short-circuits into single-record mode; a
// non-empty Columns slice short-circuits into projection mode.
type ListParams struct {
	ID        uint64
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Columns   []string
}

func (p ListParams) HasID() bool {
	return p.ID > 0
}

func (p ListParams) HasColumns() bool {
	return len(p.Columns) > 0
}

// GetSearch returns the search needle trimmed and case-folded.
func (p ListParams) GetSearch() string {
	return portal.MakeStringable(p.Search).ToLower()
}

func (p ListParams) Paginate() pagination.Paginate {
	page := p.Page
	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	limit := p.Limit
	if limit < 1 || limit > pagination.MaxLimit {
		limit = pagination.DefaultLimit
	}

	return pagination.Paginate{Page: page, Limit: limit}
}

// OrderClause builds the ordering expression, restricting the sort column to
// the given allow-list. Unknown columns and directions fall back to the
// defaults instead of reaching the database.
func (p ListParams) OrderClause(table string, sortable map[string]bool) string {
	column := p.SortBy
	if !sortable[column] {
		column = defaultSortBy
	}

	direction := p.SortOrder
	if direction != "asc" && direction != "desc" {
		direction = defaultSortOrder
	}

	return fmt.Sprintf("%s.%s %s", table, column, direction)
}

// SafeColumns filters the requested projection columns against the same
// allow-list used for sorting, preserving the caller's order.
func (p ListParams) SafeColumns(sortable map[string]bool) []string {
	var out []string

	for _, column := range p.Columns {
		if sortable[column] {
			out = append(out, column)
		}
	}

	return out
}
