package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// DefaultLimit is the fixed page size of every admin table.
const DefaultLimit = 10

type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// Meta is the pagination block attached to list responses.
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
}

// ParseFromRequest reads ?page= from the Fiber context. The page size is
// fixed; invalid pages fall back to 1.
func ParseFromRequest(c *fiber.Ctx) Pagination {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return New(page, DefaultLimit)
}

func New(page, limit int) Pagination {
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) > 0 {
		pages++
	}
	return int(pages)
}

// Clamp bounds page to [1, max(1, totalPages)].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Window returns the [start, end) slice bounds of the page over n items.
func (p Pagination) Window(n int) (int, int) {
	start := p.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + p.Limit
	if end > n {
		end = n
	}
	return start, end
}

func (p Pagination) Meta() Meta {
	return Meta{
		CurrentPage: p.Page,
		PerPage:     p.Limit,
		TotalItems:  p.Total,
		TotalPages:  TotalPages(p.Total, p.Limit),
	}
}
