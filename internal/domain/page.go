package domain

// PaginationParams carries page/limit values from the HTTP layer to whatever
// slices the result. Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to page=1, limit=20.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate returns the window of items selected by p.
// Pages past the end yield an empty, non-nil slice. The page bound is checked
// before Offset is computed, so a huge page cannot overflow into a negative index.
func Paginate[T any](items []T, p PaginationParams) []T {
	if len(items) == 0 || p.Page < 1 || p.Limit < 1 || p.Page-1 > (len(items)-1)/p.Limit {
		return []T{}
	}
	start := p.Offset()
	end := min(start+p.Limit, len(items))
	return items[start:end]
}
