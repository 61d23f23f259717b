package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, info := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 2, info.CurrentPage)

	page, info = Paginate(items, 9, 2)
	assert.Equal(t, []int{5}, page, "past the end clamps to the last page")
	assert.Equal(t, 3, info.CurrentPage)

	page, info = Paginate([]int{}, 0, 0)
	assert.Empty(t, page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, DefaultPageSize, info.PageSize)
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(1, 10, 3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	start, end = CalculateSliceIndices(5, 10, 3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("later", time.Minute))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 4, 2024", FormatDate("2024-03-04T10:15:00Z"))
	assert.Equal(t, "Mar 4, 2024", FormatDate("2024-03-04T10:15:00.123456"))
	assert.Equal(t, "Mar 4, 2024", FormatDate("2024-03-04"))
	assert.Equal(t, "yesterday", FormatDate("yesterday"))
	assert.Empty(t, FormatDate(" "))
}
