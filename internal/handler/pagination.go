package handler

import (
	"github.com/pkordes/itinerary/internal/domain"
	"github.com/pkordes/itinerary/internal/handler/gen"
)

// paginationToResponse reports the page actually served, after
// domain.NewPaginationParams applied defaults and caps.
func paginationToResponse(p domain.PaginationParams, total int64) gen.Pagination {
	return gen.Pagination{Page: p.Page, Limit: p.Limit, Total: total}
}
