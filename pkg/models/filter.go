package models

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/aerohr/console/pkg/constants"
)

// FilterState is what the user currently wants to see. Any change to Search or
// FieldFilters resets Page to 1.
type FilterState struct {
	Search       string            `json:"search"`
	FieldFilters map[string]string `json:"field_filters"`
	Page         int               `json:"page"`
	PerPage      int               `json:"per_page"`
}

// NewFilterState returns the initial state: no search, no filters, page 1.
func NewFilterState(perPage int) FilterState {
	if perPage <= 0 {
		perPage = constants.DefaultPerPage
	}
	return FilterState{
		FieldFilters: make(map[string]string),
		Page:         1,
		PerPage:      perPage,
	}
}

// FieldFilter returns the value of key, or "all" when unset.
func (f *FilterState) FieldFilter(key string) string {
	if v, ok := f.FieldFilters[key]; ok {
		return v
	}
	return constants.FilterAll
}

// SetFieldFilter stores value under key. It reports whether anything changed;
// setting the current value again is a no-op and keeps the page.
func (f *FilterState) SetFieldFilter(key, value string) bool {
	if f.FieldFilter(key) == value {
		return false
	}
	if f.FieldFilters == nil {
		f.FieldFilters = make(map[string]string)
	}
	f.FieldFilters[key] = value
	f.Page = 1
	return true
}

// SetSearch replaces the search text, resetting the page when it changed.
func (f *FilterState) SetSearch(text string) bool {
	if f.Search == text {
		return false
	}
	f.Search = text
	f.Page = 1
	return true
}

// SetPerPage changes the page size and resets the page.
func (f *FilterState) SetPerPage(n int) {
	if n <= 0 {
		n = constants.DefaultPerPage
	}
	if n > constants.MaxPerPage {
		n = constants.MaxPerPage
	}
	f.PerPage = n
	f.Page = 1
}

// LastPage is ceil(total/perPage), never below 1.
func (f *FilterState) LastPage(total int) int {
	perPage := f.PerPage
	if perPage <= 0 {
		perPage = constants.DefaultPerPage
	}
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// ClampPage returns n clamped into [1, LastPage(total)].
func (f *FilterState) ClampPage(n, total int) int {
	if n < 1 {
		return 1
	}
	if last := f.LastPage(total); n > last {
		return last
	}
	return n
}

// SetPage moves to page n, clamped against total. Other filters are kept.
// It reports the page actually applied.
func (f *FilterState) SetPage(n, total int) int {
	f.Page = f.ClampPage(n, total)
	return f.Page
}

// ActiveFilters returns the non-"all" filters sorted by key.
func (f *FilterState) ActiveFilters() []string {
	keys := make([]string, 0, len(f.FieldFilters))
	for k, v := range f.FieldFilters {
		if v != constants.FilterAll {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// ExportQuery serialises the filters and search without pagination.
func (f *FilterState) ExportQuery() url.Values {
	q := url.Values{}
	for _, k := range f.ActiveFilters() {
		q.Set(k, f.FieldFilters[k])
	}
	if f.Search != "" {
		q.Set(constants.ParamSearch, f.Search)
	}
	return q
}

// Query serialises the full list request.
func (f *FilterState) Query() url.Values {
	q := f.ExportQuery()
	page := f.Page
	if page < 1 {
		page = 1
	}
	perPage := f.PerPage
	if perPage <= 0 {
		perPage = constants.DefaultPerPage
	}
	q.Set(constants.ParamPage, strconv.Itoa(page))
	q.Set(constants.ParamPerPage, strconv.Itoa(perPage))
	return q
}

// Clone returns a deep copy, used as the snapshot a request is dispatched with.
func (f FilterState) Clone() FilterState {
	c := f
	c.FieldFilters = make(map[string]string, len(f.FieldFilters))
	for k, v := range f.FieldFilters {
		c.FieldFilters[k] = v
	}
	return c
}

// Equal compares two states, treating a missing filter as "all".
func (f FilterState) Equal(o FilterState) bool {
	if f.Search != o.Search || f.Page != o.Page || f.PerPage != o.PerPage {
		return false
	}
	for k := range f.FieldFilters {
		if f.FieldFilter(k) != o.FieldFilter(k) {
			return false
		}
	}
	for k := range o.FieldFilters {
		if f.FieldFilter(k) != o.FieldFilter(k) {
			return false
		}
	}
	return true
}

// FilterStateFromQuery parses list query parameters. Keys other than page,
// per_page and search become field filters.
func FilterStateFromQuery(q url.Values) FilterState {
	f := NewFilterState(constants.DefaultPerPage)
	if n, err := strconv.Atoi(q.Get(constants.ParamPerPage)); err == nil && n > 0 {
		f.PerPage = n
		if f.PerPage > constants.MaxPerPage {
			f.PerPage = constants.MaxPerPage
		}
	}
	if n, err := strconv.Atoi(q.Get(constants.ParamPage)); err == nil && n > 0 {
		f.Page = n
	}
	f.Search = q.Get(constants.ParamSearch)
	for k, vals := range q {
		switch k {
		case constants.ParamPage, constants.ParamPerPage, constants.ParamSearch:
			continue
		}
		if len(vals) > 0 && vals[0] != "" {
			f.FieldFilters[k] = vals[0]
		}
	}
	return f
}
