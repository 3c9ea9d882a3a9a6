package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, err := Paginate(items, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, page.Items)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)

	page, err = Paginate(items, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, page.Items)

	page, err = Paginate(items, 9, 3)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 9, page.CurrentPage)
}

func TestPaginateEmpty(t *testing.T) {
	page, err := Paginate([]string{}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPaginateRejectsInvalid(t *testing.T) {
	for _, pl := range [][2]int{{0, 10}, {1, 0}, {-1, 5}, {1, -3}} {
		_, err := Paginate([]int{1}, pl[0], pl[1])
		assert.ErrorIs(t, err, ErrInvalidPage)
	}
}

func TestPaginateReconstructsInput(t *testing.T) {
	items := make([]int, 53)
	for i := range items {
		items[i] = i
	}

	for _, limit := range []int{1, 5, 10, 53, 100} {
		var joined []int
		first, err := Paginate(items, 1, limit)
		require.NoError(t, err)
		for p := 1; p <= first.TotalPages; p++ {
			page, err := Paginate(items, p, limit)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(page.Items), limit)
			joined = append(joined, page.Items...)
		}
		assert.Equal(t, items, joined, "limit %d", limit)
	}
}
