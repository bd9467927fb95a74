package usecase

import "backoffice/internal/usecase/listing"

// ListOptions carries the filter/sort/paginate parameters of a listing call.
type ListOptions struct {
	Term      string
	SortField string
	Direction listing.Direction
	Page      int
}
