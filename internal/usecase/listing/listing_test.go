package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	First string
	Last  string
	Age   int
}

func personFields(p person) []string {
	return []string{p.First, p.Last}
}

func TestFilter_CaseInsensitiveAcrossFields(t *testing.T) {
	rows := []person{
		{First: "Alexandra", Last: "Pires"},
		{First: "Bruno", Last: "Alexio"},
		{First: "Zoe", Last: "Nunes"},
	}

	matched := Filter(rows, "ALEX", personFields)

	require.Len(t, matched, 2)
	assert.Equal(t, "Alexandra", matched[0].First)
	assert.Equal(t, "Bruno", matched[1].First)
}

func TestFilter_EmptyTermMatchesEverything(t *testing.T) {
	rows := []person{{First: "Ana"}, {First: "Bruno"}}

	matched := Filter(rows, "", personFields)

	assert.Len(t, matched, 2)
}

func TestSortBy_StableAndReversible(t *testing.T) {
	rows := []person{
		{First: "Ana", Age: 30},
		{First: "Bruno", Age: 20},
		{First: "Carla", Age: 30},
	}
	byAge := func(a, b person) bool { return a.Age < b.Age }

	asc := SortBy(rows, Ascending, byAge)
	require.Len(t, asc, 3)
	assert.Equal(t, "Bruno", asc[0].First)
	// Equal keys keep their original relative order.
	assert.Equal(t, "Ana", asc[1].First)
	assert.Equal(t, "Carla", asc[2].First)

	desc := SortBy(rows, Descending, byAge)
	require.Len(t, desc, 3)
	// Descending is stable too: Ana and Carla still appear in input order.
	assert.Equal(t, "Ana", desc[0].First)
	assert.Equal(t, "Carla", desc[1].First)
	assert.Equal(t, "Bruno", desc[2].First)

	// The input slice is never reordered.
	assert.Equal(t, "Ana", rows[0].First)
}

func TestNextDirection_TogglesOnSameField(t *testing.T) {
	assert.Equal(t, Descending, NextDirection("name", "name", Ascending))
	assert.Equal(t, Ascending, NextDirection("name", "name", Descending))
	assert.Equal(t, Ascending, NextDirection("name", "created_at", Descending))
}

func TestPaginate_SlicesPages(t *testing.T) {
	rows := make([]int, 25)
	for i := range rows {
		rows[i] = i
	}

	page := Paginate(rows, 2, 10)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalItems)
	require.Len(t, page.Items, 10)
	assert.Equal(t, 10, page.Items[0])
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	rows := []int{1, 2, 3}

	below := Paginate(rows, 0, 10)
	assert.Equal(t, 1, below.Page)

	above := Paginate(rows, 99, 10)
	assert.Equal(t, 1, above.Page)
	assert.Len(t, above.Items, 3)
}

func TestPaginate_EmptyCollection(t *testing.T) {
	page := Paginate([]int{}, 1, 10)

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}
