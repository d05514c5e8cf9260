package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/kirana/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestFromRequestDefaults(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		page    int
		perPage int
	}{
		{"no params", "/users", 1, 10},
		{"explicit", "/users?page=3&per_page=25", 3, 25},
		{"zero page", "/users?page=0", 1, 10},
		{"negative page", "/users?page=-4", 1, 10},
		{"garbage", "/users?page=abc&per_page=xyz", 1, 10},
		{"zero per_page", "/users?per_page=0", 1, 10},
		{"capped per_page", "/users?per_page=5000", 1, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.target, nil)
			p := pagination.FromRequest(req)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.perPage, p.PerPage)
		})
	}
}

func TestMetaFor(t *testing.T) {
	// 25 items at 10 per page is 3 pages.
	p := pagination.Sanitize(3, 10)
	meta := p.MetaFor(25)

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, 3, meta.CurrentPage)
	assert.Equal(t, 10, meta.PerPage)
}

func TestMetaForExactMultiple(t *testing.T) {
	meta := pagination.Sanitize(1, 10).MetaFor(30)
	assert.Equal(t, 3, meta.Pages)
}

func TestMetaForEmpty(t *testing.T) {
	meta := pagination.Sanitize(1, 10).MetaFor(0)
	assert.Equal(t, int64(0), meta.Total)
	assert.Equal(t, 0, meta.Pages)
}

func TestMetaPastEnd(t *testing.T) {
	// Requesting a page beyond the data keeps the real totals; the caller
	// just gets an empty slice for that page.
	meta := pagination.Sanitize(100, 10).MetaFor(25)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, 100, meta.CurrentPage)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Sanitize(1, 10).Offset())
	assert.Equal(t, 20, pagination.Sanitize(3, 10).Offset())
	assert.Equal(t, 75, pagination.Sanitize(4, 25).Offset())
}
