package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPageSlicesAtFixedOffsets(t *testing.T) {
	items := sequence(25)

	assert.Equal(t, sequence(10), Page(1, items))
	assert.Equal(t, items[10:20], Page(2, items))
	assert.Equal(t, items[20:25], Page(3, items), "last page is shorter")
}

func TestPagePastTheEndIsEmpty(t *testing.T) {
	items := sequence(25)

	assert.Empty(t, Page(4, items))
	assert.Empty(t, Page(100, items))
	assert.Empty(t, Page(1, []int{}))
}

func TestPageClampsNonPositivePages(t *testing.T) {
	items := sequence(5)

	assert.Equal(t, items, Page(0, items))
	assert.Equal(t, items, Page(-3, items))
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-2"))
}
