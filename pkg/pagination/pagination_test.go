package pagination

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	cases := []struct {
		name          string
		page, perPage string
		want          Params
	}{
		{"defaults", "", "", Params{Page: 1, PerPage: 10}},
		{"explicit", "3", "20", Params{Page: 3, PerPage: 20}},
		{"clamp per_page", "1", "500", Params{Page: 1, PerPage: 100}},
		{"zero page", "0", "10", Params{Page: 1, PerPage: 10}},
		{"negative per_page", "2", "-5", Params{Page: 2, PerPage: 10}},
		{"garbage", "abc", "x", Params{Page: 1, PerPage: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewParams(tc.page, tc.perPage, 10))
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	assert.Equal(t, 50, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestParamsOffsetHugePage(t *testing.T) {
	p := NewParams("9223372036854775807", "2", 10)
	assert.Equal(t, math.MaxInt, p.Offset())
	assert.Positive(t, NewParams("4611686018427387904", "2", 10).Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 34, TotalPages(333, 10))
}

func TestNewEnvelopeLinks(t *testing.T) {
	ep := Endpoint{Path: "/users/3/followers"}

	first := New([]int{1, 2}, Params{Page: 1, PerPage: 2}, 5, ep)
	assert.Equal(t, 3, first.Pagination.TotalPages)
	assert.Equal(t, "/users/3/followers?page=1&per_page=2", first.Links.Self)
	assert.Equal(t, "/users/3/followers?page=2&per_page=2", first.Links.Next)
	assert.Empty(t, first.Links.Prev)
	assert.Equal(t, "/users/3/followers?page=3&per_page=2", first.Links.Last)

	last := New([]int{5}, Params{Page: 3, PerPage: 2}, 5, ep)
	assert.Empty(t, last.Links.Next)
	assert.Equal(t, "/users/3/followers?page=2&per_page=2", last.Links.Prev)
}

func TestNewEnvelopeBeyondLastPage(t *testing.T) {
	page := New[int](nil, Params{Page: 9, PerPage: 10}, 12, Endpoint{Path: "/users"})

	require.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.Empty(t, page.Links.Next)
	assert.NotEmpty(t, page.Links.Prev)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}

func TestNewEnvelopeEmptyCollection(t *testing.T) {
	page := New([]string{}, Params{Page: 1, PerPage: 10}, 0, Endpoint{Path: "/books"})

	assert.Equal(t, 0, page.Pagination.TotalPages)
	assert.Empty(t, page.Links.Next)
	assert.Equal(t, "/books?page=1&per_page=10", page.Links.Last)
}

func TestEndpointKeepsExtraQuery(t *testing.T) {
	ep := Endpoint{Path: "/apply-buys", Query: url.Values{"status": {"0"}, "page": {"7"}}}
	assert.Equal(t, "/apply-buys?page=2&per_page=5&status=0", ep.URL(2, 5))
}

func TestMap(t *testing.T) {
	out := Map([]int{1, 2, 3}, func(i int) string { return string(rune('a' + i - 1)) })
	assert.Equal(t, []string{"a", "b", "c"}, out)
}
