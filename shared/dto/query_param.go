package dto

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads paging and sorting from the query string.
// sort_by is dropped unless it is one of sortable. With withDefaults,
// missing paging falls back to page 1 of DefaultValueLimit rows.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool, sortable ...string) {
	query := r.URL.Query()

	q.Page = positive(query, constant.RequestParamPage, q.Page)
	q.Limit = min(positive(query, constant.RequestParamLimit, q.Limit), constant.MaxValueLimit)

	if sortBy := query.Get(constant.RequestParamSortBy); slices.Contains(sortable, sortBy) {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

func positive(query url.Values, key string, fallback int) int {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value <= 0 {
		return fallback
	}

	return value
}
