package dto

// PaginationInfo describes one page of a client-side paged list
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// HasPrev reports whether a previous page exists
func (p PaginationInfo) HasPrev() bool {
	return p.CurrentPage > 1
}

// HasNext reports whether a next page exists
func (p PaginationInfo) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}
