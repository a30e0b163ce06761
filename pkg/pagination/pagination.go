package pagination

const (
	DefaultPage      = 1
	DefaultPerPage   = 15
	MinPerPage       = 1
	MaxPerPage       = 100
	DefaultSortOrder = "desc"
)

// Request carries the raw paging parameters from the query string. Normalize
// before use; repositories validate SortBy against their own column lists.
type Request struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string
}

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func (r Request) Normalize() Request {
	out := r
	if out.Page < 1 {
		out.Page = DefaultPage
	}
	if out.PerPage < MinPerPage {
		out.PerPage = DefaultPerPage
	}
	if out.PerPage > MaxPerPage {
		out.PerPage = MaxPerPage
	}
	if out.SortOrder != "asc" && out.SortOrder != "desc" {
		out.SortOrder = DefaultSortOrder
	}
	return out
}

// Offset assumes the request is already normalized.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

func NewMeta(r Request, total int64) Meta {
	return Meta{
		Page:       r.Page,
		PerPage:    r.PerPage,
		Total:      total,
		TotalPages: totalPages(total, r.PerPage),
	}
}

func totalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}
