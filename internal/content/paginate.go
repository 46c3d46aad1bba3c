package content

// Pagination describes one page of a filtered listing.
type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
	HasNextPage  bool
	HasPrevPage  bool
}

// Page is a slice of items together with its pagination state.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// Paginate returns the requested page of items. Page numbers are clamped into
// [1, TotalPages]; an empty listing has zero pages and stays on page 1.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = 1
	}
	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := min(start+perPage, total)
	if start > total {
		start = total
	}

	return Page[T]{
		Items: items[start:end],
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: perPage,
			HasNextPage:  page < totalPages,
			HasPrevPage:  page > 1,
		},
	}
}

// Window returns at most size page numbers centred on the current page.
func (p Pagination) Window(size int) []int {
	if p.TotalPages == 0 || size < 1 {
		return nil
	}
	start := p.CurrentPage - size/2
	if start < 1 {
		start = 1
	}
	end := start + size - 1
	if end > p.TotalPages {
		end = p.TotalPages
		start = end - size + 1
		if start < 1 {
			start = 1
		}
	}
	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}
