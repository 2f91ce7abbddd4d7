package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Statistics holds server-computed (or locally derived) aggregates.
type Statistics map[string]interface{}

// Clone returns a shallow copy.
func (s Statistics) Clone() Statistics {
	if s == nil {
		return nil
	}
	c := make(Statistics, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Float returns the numeric value of key, or 0 when missing or not numeric.
func (s Statistics) Float(key string) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

// Int returns the integer value of key, truncating floats.
func (s Statistics) Int(key string) int {
	return int(s.Float(key))
}

// String returns key formatted for display.
func (s Statistics) String(key string) string {
	switch v := s[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// ListResponse is the list endpoint payload: {data, total, statistics}.
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Total      int        `json:"total"`
	Statistics Statistics `json:"statistics,omitempty"`
}

// PageResult is one fetched page. It is replaced wholesale by the next fetch;
// Version increases monotonically per controller so older results can be
// discarded.
type PageResult[T Record] struct {
	Records    []T
	Total      int
	Statistics Statistics
	Version    uint64
}

// PageFromResponse normalises a list response.
func PageFromResponse[T Record](resp ListResponse[T]) PageResult[T] {
	records := resp.Data
	if records == nil {
		records = []T{}
	}
	total := resp.Total
	if total < len(records) {
		total = len(records)
	}
	return PageResult[T]{
		Records:    records,
		Total:      total,
		Statistics: resp.Statistics,
	}
}

// Without returns a copy of the page minus the record with id, and whether it
// was present.
func (p PageResult[T]) Without(id string) (PageResult[T], bool) {
	out := p
	out.Records = make([]T, 0, len(p.Records))
	found := false
	for _, r := range p.Records {
		if r.RecordID() == id {
			found = true
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out, found
}
