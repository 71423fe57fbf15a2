package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed and capped at MaxPage. Limit is capped at MaxPageLimit.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// DefaultPageLimit and MaxPageLimit bound list endpoints.
// MaxPage keeps (MaxPage-1)*MaxPageLimit within an int4 OFFSET.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	MaxPage          = math.MaxInt32 / MaxPageLimit
)

// NewPaginationParams builds a PaginationParams from optional query params.
// Nil or non-positive values fall back to page=1, limit=DefaultPageLimit.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if page != nil && *page >= 1 {
		p.Page = min(*page, MaxPage)
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, MaxPageLimit)
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
// Out-of-range fields are clamped first, so the result is never negative.
func (p PaginationParams) Offset() int {
	return (min(max(p.Page, 1), MaxPage) - 1) * p.limit()
}

func (p PaginationParams) limit() int {
	return min(max(p.Limit, 0), MaxPageLimit)
}

// Window returns the [start, end) slice bounds of this page within a
// collection of n items. Both bounds are clamped to n.
func (p PaginationParams) Window(n int) (start, end int) {
	start = min(p.Offset(), n)
	end = min(start+p.limit(), n)
	return start, end
}
