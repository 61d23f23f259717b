package helpers

import (
	"math"

	"github.com/yigit/campusconnect/internal/app/models/dto"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems, page, size int) dto.PaginationInfo {
	if size <= 0 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 1
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	// Ensure currentPage never exceeds totalPages
	if page > totalPages {
		page = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	start = (page - 1) * size
	end = start + size

	if start >= totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return start, end
}

// Paginate returns the requested page of items along with its metadata.
// Out-of-range pages are clamped to the last page.
func Paginate[T any](items []T, page, size int) ([]T, dto.PaginationInfo) {
	info := NewPaginationInfo(len(items), page, size)
	start, end := CalculateSliceIndices(info.CurrentPage, info.PageSize, len(items))
	return items[start:end], info
}
