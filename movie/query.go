package movie

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Query holds the browse filters. It round-trips through a URL query string
// so the listing state can be shared as a link.
type Query struct {
	Q        string
	Page     int
	PageSize int
	Genre    string
}

func NewQuery() Query {
	return Query{Page: DefaultPage, PageSize: DefaultPageSize}
}

// ParseQuery reads q, page, pageSize and genre. Filters are kept verbatim;
// missing or non-numeric page values fall back to the defaults.
func ParseQuery(values url.Values) Query {
	query := NewQuery()
	query.Q = values.Get("q")
	query.Genre = values.Get("genre")
	query.Page = parseInt(values.Get("page"), DefaultPage)
	query.PageSize = parseInt(values.Get("pageSize"), DefaultPageSize)
	return query
}

// Values encodes the query, omitting empty filters and default paging.
func (q Query) Values() url.Values {
	values := url.Values{}
	if q.Q != "" {
		values.Set("q", q.Q)
	}
	if q.Genre != "" {
		values.Set("genre", q.Genre)
	}
	if q.Page != 0 && q.Page != DefaultPage {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize != 0 && q.PageSize != DefaultPageSize {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return values
}

func (q Query) withDefaults() Query {
	if q.Page == 0 {
		q.Page = DefaultPage
	}
	if q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	return q
}

func parseInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
