// Package derive computes presentation-only refinements over an already
// fetched page: client-side filtering, date-window classification, derived
// statistic cards and leave-window summaries.
package derive

import (
	"sort"
	"strings"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/models"
)

// MatchText reports whether at least one of keys contains search,
// case-insensitively. Empty search matches everything; missing fields are
// skipped.
func MatchText(r models.Record, search string, keys []string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	fields := r.SearchFields()
	for _, k := range keys {
		v, ok := fields[k]
		if !ok || v == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*v), needle) {
			return true
		}
	}
	return false
}

// MatchCategory reports whether the record's key field equals value exactly,
// or value is the "all" sentinel.
func MatchCategory(r models.Record, key, value string) bool {
	if value == constants.FilterAll {
		return true
	}
	v, ok := r.FilterFields()[key]
	if !ok {
		return false
	}
	return v == value
}

// Matches is the combined predicate: text AND every categorical filter.
func Matches(r models.Record, fs models.FilterState, keys []string) bool {
	if !MatchText(r, fs.Search, keys) {
		return false
	}
	for k, v := range fs.FieldFilters {
		if !MatchCategory(r, k, v) {
			return false
		}
	}
	return true
}

// Filter returns the records matching fs, preserving order.
func Filter[T models.Record](records []T, fs models.FilterState, keys []string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if Matches(r, fs, keys) {
			out = append(out, r)
		}
	}
	return out
}

// SearchKeys returns every search field key a record exposes, sorted.
func SearchKeys(r models.Record) []string {
	keys := make([]string, 0)
	for k := range r.SearchFields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
