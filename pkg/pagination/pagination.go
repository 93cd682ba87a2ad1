// Package pagination holds the page math shared by every list endpoint:
// 1-indexed pages of a fixed size, with totals reported alongside the
// items.
package pagination

// DefaultPageSize is the number of items per page across the catalog.
const DefaultPageSize = 12

// Page describes one requested page.
type Page struct {
	Number int
	Size   int
}

// New clamps the requested page number and size to sane values.
func New(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages returns ceil(total / size).
func (p Page) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.Size) - 1) / int64(p.Size))
}
