package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatchesCaseInsensitiveSubstring(t *testing.T) {
	items := []Question{
		{ID: 1, Question: "This is a title example"},
		{ID: 2, Question: "unrelated"},
		{ID: 3, Question: "A book ENTITLED something"},
	}

	matches := Filter("title", items)

	assert.Len(t, matches, 2)
	assert.Equal(t, int64(1), matches[0].ID)
	assert.Equal(t, int64(3), matches[1].ID, "substring match inside a longer word")
}

func TestFilterPreservesInputOrder(t *testing.T) {
	items := []Question{
		{ID: 5, Question: "zebra crossing"},
		{ID: 2, Question: "Zebra stripes"},
		{ID: 9, Question: "giraffe"},
		{ID: 1, Question: "one more zebra"},
	}

	matches := Filter("ZEBRA", items)

	ids := make([]int64, 0, len(matches))
	for _, q := range matches {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []int64{5, 2, 1}, ids)
}

func TestFilterNoMatches(t *testing.T) {
	items := []Question{{ID: 1, Question: "unrelated"}}

	assert.Empty(t, Filter("title", items))
}
