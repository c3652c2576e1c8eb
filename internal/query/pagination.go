package query

// Pagination tracks the 1-indexed current page over a known total. The page
// is always kept inside [1, TotalPages]; filter changes reset it to 1.
type Pagination struct {
	Page    int
	PerPage int
	Total   int
}

// TotalPages is ceil(Total/PerPage), never less than 1 so an empty result
// still has a valid current page.
func (p *Pagination) TotalPages() int {
	if p.PerPage <= 0 {
		return 1
	}
	n := (p.Total + p.PerPage - 1) / p.PerPage
	if n < 1 {
		n = 1
	}
	return n
}

// GoTo clamps n into the valid page range, makes it current, and returns it.
func (p *Pagination) GoTo(n int) int {
	if n < 1 {
		n = 1
	}
	if max := p.TotalPages(); n > max {
		n = max
	}
	p.Page = n
	return n
}

// SetTotal records a new total and re-clamps the current page, which may have
// fallen off the end after a narrower filter.
func (p *Pagination) SetTotal(total int) {
	p.Total = total
	p.GoTo(p.Page)
}

// Reset returns to the first page.
func (p *Pagination) Reset() {
	p.Page = 1
}

// Window returns the [start, end) slice bounds of the current page within a
// collection of Total items.
func (p *Pagination) Window() (start, end int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	start = (page - 1) * p.PerPage
	if start > p.Total {
		start = p.Total
	}
	end = start + p.PerPage
	if end > p.Total || p.PerPage <= 0 {
		end = p.Total
	}
	return start, end
}
