package shared

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type TableSort struct {
	Key   string    `json:"key"`
	Order SortOrder `json:"order"`
}

type PaginationParams struct {
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Sort  *TableSort `json:"sort,omitempty"`
}

func (p PaginationParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// SortKey and Descending unpack Sort for store filters.
func (p PaginationParams) SortKey() string {
	if p.Sort == nil {
		return ""
	}
	return p.Sort.Key
}

func (p PaginationParams) Descending() bool {
	return p.Sort != nil && p.Sort.Order == SortDesc
}

var sortKeyPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// ParsePagination reads page, limit and sort=key:asc|desc. Malformed values
// fall back to the defaults; limit is capped at maxLimit.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) PaginationParams {
	query := r.URL.Query()
	params := PaginationParams{Page: 1, Limit: defaultLimit}
	if raw := query.Get("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			params.Page = v
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			params.Limit = v
		}
	}
	if maxLimit > 0 && params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	if raw := strings.TrimSpace(query.Get("sort")); raw != "" {
		key, order, _ := strings.Cut(raw, ":")
		sort := TableSort{Key: key, Order: SortAsc}
		if strings.EqualFold(order, string(SortDesc)) {
			sort.Order = SortDesc
		}
		if sortKeyPattern.MatchString(sort.Key) {
			params.Sort = &sort
		}
	}
	return params
}
