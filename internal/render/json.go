package render

import (
	"encoding/json"
	"io"

	"github.com/aerohr/console/internal/listview"
	"github.com/aerohr/console/pkg/models"
)

type jsonPage[T models.Record] struct {
	Page       int               `json:"page"`
	LastPage   int               `json:"last_page"`
	PerPage    int               `json:"per_page"`
	Total      int               `json:"total"`
	Filters    map[string]string `json:"filters,omitempty"`
	Search     string            `json:"search,omitempty"`
	Statistics models.Statistics `json:"statistics,omitempty"`
	Data       []T               `json:"data"`
}

// JSON writes the visible rows of view with pagination metadata.
func JSON[T models.Record](w io.Writer, view listview.View[T]) error {
	out := jsonPage[T]{
		Page:       view.State.Page,
		LastPage:   view.LastPage,
		PerPage:    view.State.PerPage,
		Total:      view.Total,
		Search:     view.State.Search,
		Statistics: view.Statistics,
		Data:       view.Visible,
	}
	if active := view.State.ActiveFilters(); len(active) > 0 {
		out.Filters = make(map[string]string, len(active))
		for _, k := range active {
			out.Filters[k] = view.State.FieldFilters[k]
		}
	}
	if out.Data == nil {
		out.Data = []T{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
