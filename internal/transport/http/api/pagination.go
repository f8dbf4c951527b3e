package api

// Paginated is one page of a list. Build it with NewPaginated so TotalPages
// and Data stay consistent.
type Paginated[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func NewPaginated[T any](data []T, total, page, limit int) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Paginated[T]{Data: data, Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
