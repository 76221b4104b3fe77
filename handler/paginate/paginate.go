package paginate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
	"github.com/ImRehmankhan/nextcodehub/database/repository/queries"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

func MakeFrom(url url.Values) pagination.Paginate {
	page := pagination.MinPage
	pageSize := pagination.DefaultLimit

	if url.Get("page") != "" {
		if tPage, err := strconv.Atoi(url.Get("page")); err == nil {
			page = tPage
		}
	}

	if url.Get("limit") != "" {
		if limit, err := strconv.Atoi(url.Get("limit")); err == nil {
			pageSize = limit
		}
	}

	if page < pagination.MinPage {
		page = pagination.MinPage
	}

	if pageSize > pagination.MaxLimit || pageSize < 1 {
		pageSize = pagination.DefaultLimit
	}

	return pagination.Paginate{
		Page:  page,
		Limit: pageSize,
	}
}

// ListParamsFrom parses the full admin listing query string: id switches to
// single-record mode, col to projection mode, everything else feeds the
// paginated list.
func ListParamsFrom(url url.Values) queries.ListParams {
	params := queries.ListParams{
		Search:    url.Get("search"),
		SortBy:    url.Get("sortBy"),
		SortOrder: url.Get("sortOrder"),
	}

	if raw := url.Get("id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			params.ID = id
		}
	}

	if raw := url.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			params.Page = page
		}
	}

	if raw := url.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			params.Limit = limit
		}
	}

	if raw := url.Get("col"); raw != "" {
		params.Columns = portal.FilterNonEmpty(
			strings.Split(raw, ","),
		)
	}

	return params
}
