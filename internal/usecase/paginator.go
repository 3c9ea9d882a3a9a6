package usecase

import "errors"

// ErrInvalidPage is returned for a page or limit below one.
var ErrInvalidPage = errors.New("page and limit must be positive integers")

// Page is one slice of an already sorted result set.
type Page[T any] struct {
	Items       []T
	Total       int
	TotalPages  int
	CurrentPage int
}

// Paginate slices items for a 1-based page. Pages past the end are empty.
func Paginate[T any](items []T, page, limit int) (Page[T], error) {
	if page < 1 || limit < 1 {
		return Page[T]{}, ErrInvalidPage
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
