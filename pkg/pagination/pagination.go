// Package pagination is the cross-cutting list contract: every list endpoint
// accepts page/per_page query parameters and answers with the page slice plus
// total, pages and current_page metadata.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/kirana/config"
	"gorm.io/gorm"
)

const DefaultPerPage = 10

// Params is a sanitised page request. Page and PerPage are always >= 1 and
// PerPage never exceeds config.PerPageMax().
type Params struct {
	Page    int
	PerPage int
}

// Meta is the envelope metadata returned alongside every page of items.
type Meta struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
}

// FromRequest reads page and per_page from the query string, applying the
// defaults (1, 10) and the configured cap. Malformed or non-positive values
// fall back to the defaults rather than erroring.
func FromRequest(r *http.Request) Params {
	return Sanitize(
		atoiDefault(r.URL.Query().Get("page"), 1),
		atoiDefault(r.URL.Query().Get("per_page"), DefaultPerPage),
	)
}

// Sanitize clamps raw page/perPage values into the allowed range.
func Sanitize(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if max := config.PerPageMax(); perPage > max {
		perPage = max
	}
	return Params{Page: page, PerPage: perPage}
}

// MetaFor computes the page metadata for a total item count.
// Pages is ceil(total/perPage); a page past the end is legal and simply
// yields an empty slice, with the same total/pages.
func (p Params) MetaFor(total int64) Meta {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return Meta{
		Total:       total,
		Pages:       pages,
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
	}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Scope is a GORM scope applying the page's LIMIT/OFFSET:
//
//	db.Scopes(params.Scope()).Find(&users)
func (p Params) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
