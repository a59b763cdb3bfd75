package response

import "math"

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	// MaxPage keeps (page-1)*pageSize within int range on every platform.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// NormalizePage clamps page and pageSize to usable values.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// NewPagination describes the window [From, To] (1-based, inclusive) of a
// page holding count items out of total.
func NewPagination(page, pageSize, count int, total int64) *Pagination {
	p := &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}
	if pageSize > 0 {
		p.TotalPages = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	if count > 0 {
		p.From = (page-1)*pageSize + 1
		p.To = p.From + count - 1
	}
	p.HasMore = int64(page) < p.TotalPages
	return p
}
