// Package listing implements in-memory filter, sort and pagination over
// fetched collections. All functions leave their input slice untouched.
package listing

import (
	"slices"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	// Ascending sorts smallest first.
	Ascending Direction = "asc"
	// Descending sorts largest first.
	Descending Direction = "desc"
)

// DefaultPageSize is the fixed page size used by all management screens.
const DefaultPageSize = 10

// IsValid checks if the Direction is a valid value.
func (d Direction) IsValid() bool {
	return d == Ascending || d == Descending
}

// NextDirection implements the column-header toggle: selecting the same field
// again flips the direction, selecting a new field resets to ascending.
func NextDirection(currentField, newField string, current Direction) Direction {
	if currentField != newField {
		return Ascending
	}
	if current == Ascending {
		return Descending
	}

	return Ascending
}

// Page is one page of a filtered, sorted collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Filter returns the rows where any of the designated fields contains the
// term, case-insensitively. An empty term matches everything.
func Filter[T any](rows []T, term string, fields func(T) []string) []T {
	if term == "" {
		return slices.Clone(rows)
	}

	needle := strings.ToLower(term)
	matched := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, field := range fields(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, row)

				break
			}
		}
	}

	return matched
}

// SortBy returns the rows ordered by the given less function, inverted when
// the direction is descending. The sort is stable in both directions, so rows
// comparing equal keep their relative order.
func SortBy[T any](rows []T, dir Direction, less func(a, b T) bool) []T {
	cmp := func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
	if dir == Descending {
		ascending := cmp
		cmp = func(a, b T) int { return -ascending(a, b) }
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, cmp)

	return sorted
}

// Paginate slices one page out of the rows. Pages are 1-based; an
// out-of-range page clamps to the last valid page.
func Paginate[T any](rows []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalItems := len(rows)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, totalItems)
	if start > totalItems {
		start = totalItems
	}

	return Page[T]{
		Items:      slices.Clone(rows[start:end]),
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
