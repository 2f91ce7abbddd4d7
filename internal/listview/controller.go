// Package listview implements the list controller behind every list screen:
// filter state, supersession-safe fetching, derived views and the
// single-record actions.
package listview

import (
	"context"
	"log"
	"sync"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/derive"
	"github.com/aerohr/console/pkg/models"
)

type statsSource int

const (
	statsNone statsSource = iota
	statsFromList
	statsFromEndpoint
)

// Controller owns the FilterState and last PageResult of one view. All
// methods are safe for concurrent use; a response is applied only if no newer
// request for the same target was dispatched in the meantime and the
// controller is still open.
type Controller[T models.Record] struct {
	fetcher  Fetcher[T]
	resource constants.Resource
	opts     options

	mu         sync.Mutex
	state      models.FilterState
	page       models.PageResult[T]
	loaded     bool
	version    uint64
	stats      models.Statistics
	statsFrom  statsSource
	tombstones map[string]struct{}
	lastErr    error
	closed     bool

	listSeq     uint64
	listCancel  context.CancelFunc
	statsSeq    uint64
	statsCancel context.CancelFunc
	inflight    map[uint64]context.CancelFunc
	opSeq       uint64
}

// New creates a controller for resource. No request is issued until Load.
func New[T models.Record](fetcher Fetcher[T], resource constants.Resource, opts ...Option) *Controller[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	state := models.NewFilterState(o.perPage)
	for k, v := range o.initialFilters {
		state.FieldFilters[k] = v
	}
	state.Search = o.initialSearch
	return &Controller[T]{
		fetcher:    fetcher,
		resource:   resource,
		opts:       o,
		state:      state,
		page:       models.PageResult[T]{Records: []T{}},
		tombstones: make(map[string]struct{}),
		inflight:   make(map[uint64]context.CancelFunc),
	}
}

// Resource returns the resource this controller lists.
func (c *Controller[T]) Resource() constants.Resource {
	return c.resource
}

// Load issues the initial list and statistics fetches.
func (c *Controller[T]) Load(ctx context.Context) Result {
	res := c.fetch(ctx, ActionLoad)
	if st := c.RefreshStatistics(ctx); st.Err != nil && !res.Superseded && res.Err == nil {
		res.Followup = st.Err
	}
	return res
}

// Refresh re-issues the list fetch with the current FilterState.
func (c *Controller[T]) Refresh(ctx context.Context) Result {
	return c.fetch(ctx, ActionRefresh)
}

// SetSearch replaces the search text, resets the page and refetches. The
// same text again is a no-op.
func (c *Controller[T]) SetSearch(ctx context.Context, text string) Result {
	c.mu.Lock()
	changed := c.state.SetSearch(text)
	c.mu.Unlock()
	if !changed {
		return ok(ActionSearch, "")
	}
	return c.fetch(ctx, ActionSearch)
}

// SetFieldFilter sets one filter dimension. Setting the current value again
// is a no-op: no page reset and no request.
func (c *Controller[T]) SetFieldFilter(ctx context.Context, key, value string) Result {
	c.mu.Lock()
	changed := c.state.SetFieldFilter(key, value)
	c.mu.Unlock()
	if !changed {
		return ok(ActionFilter, "")
	}
	return c.fetch(ctx, ActionFilter)
}

// SetPage moves to page n, clamped to [1, lastPage] of the last known total.
func (c *Controller[T]) SetPage(ctx context.Context, n int) Result {
	c.mu.Lock()
	before := c.state.Page
	applied := c.state.SetPage(n, c.page.Total)
	c.mu.Unlock()
	if applied == before && c.isLoaded() {
		return ok(ActionPage, "")
	}
	return c.fetch(ctx, ActionPage)
}

// SetPerPage changes the page size, resets the page and refetches.
func (c *Controller[T]) SetPerPage(ctx context.Context, n int) Result {
	c.mu.Lock()
	c.state.SetPerPage(n)
	c.mu.Unlock()
	return c.fetch(ctx, ActionPerPage)
}

// Close tears the view down: in-flight requests are cancelled and any later
// resolution is ignored.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, cancel := range c.inflight {
		cancel()
		delete(c.inflight, id)
	}
	c.listCancel = nil
	c.statsCancel = nil
}

// Closed reports whether Close was called.
func (c *Controller[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller[T]) isLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// track derives a bounded request context and registers its cancel so Close
// can abort it. The returned release must be called when the request ends.
// Callers hold c.mu.
func (c *Controller[T]) track(ctx context.Context) (context.Context, context.CancelFunc, func()) {
	reqCtx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	c.opSeq++
	id := c.opSeq
	c.inflight[id] = cancel
	release := func() {
		cancel()
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
	}
	return reqCtx, cancel, release
}

// fetch dispatches a list request for a snapshot of the current state.
// Dispatching cancels the previous in-flight list request; a response is
// applied only if its sequence number is still the latest.
func (c *Controller[T]) fetch(ctx context.Context, action string) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(action)
	}
	c.listSeq++
	seq := c.listSeq
	if c.listCancel != nil {
		c.listCancel()
	}
	reqCtx, cancel, release := c.track(ctx)
	c.listCancel = cancel
	snapshot := c.state.Clone()
	c.mu.Unlock()
	defer release()

	page, err := c.fetcher.List(reqCtx, c.resource, snapshot)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.listSeq {
		return superseded(action)
	}
	c.listCancel = nil
	if err != nil {
		// Stale-but-present: records and total stay as they were.
		c.lastErr = err
		log.Printf("⚠️ %s %s: %v", action, c.resource, err)
		return failed(action, err)
	}
	c.applyPage(page)
	return ok(action, "")
}

// applyPage replaces the current page. Callers hold c.mu.
func (c *Controller[T]) applyPage(page models.PageResult[T]) {
	for id := range c.tombstones {
		if without, found := page.Without(id); found {
			page = without
			if page.Total > 0 {
				page.Total--
			}
		}
	}
	if page.Records == nil {
		page.Records = []T{}
	}
	c.version++
	page.Version = c.version
	c.page = page
	c.loaded = true
	c.lastErr = nil
	if len(page.Statistics) > 0 && c.statsFrom != statsFromEndpoint {
		c.stats = page.Statistics.Clone()
		c.statsFrom = statsFromList
	}
}

// RefreshStatistics fetches the independent statistics endpoint. Its result
// supersedes statistics embedded in list responses.
func (c *Controller[T]) RefreshStatistics(ctx context.Context) Result {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return superseded(ActionStatistics)
	}
	c.statsSeq++
	seq := c.statsSeq
	if c.statsCancel != nil {
		c.statsCancel()
	}
	reqCtx, cancel, release := c.track(ctx)
	c.statsCancel = cancel
	c.mu.Unlock()
	defer release()

	stats, err := c.fetcher.Statistics(reqCtx, c.resource)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.statsSeq {
		return superseded(ActionStatistics)
	}
	c.statsCancel = nil
	if err != nil {
		log.Printf("⚠️ statistics %s: %v", c.resource, err)
		return failed(ActionStatistics, err)
	}
	c.stats = stats
	c.statsFrom = statsFromEndpoint
	return ok(ActionStatistics, "")
}

// findRecord returns the loaded record with id. Callers hold c.mu.
func (c *Controller[T]) findRecord(id string) (T, bool) {
	for _, r := range c.page.Records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// State returns a copy of the current FilterState.
func (c *Controller[T]) State() models.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// View is an immutable snapshot for the presentation surface.
type View[T models.Record] struct {
	State      models.FilterState
	Records    []T
	Visible    []T
	Total      int
	LastPage   int
	Statistics models.Statistics
	Version    uint64
	Loaded     bool
	Loading    bool
	LastErr    error
}

// View snapshots the controller. Visible applies the client-side search,
// categorical filters and expression filter over the loaded page.
func (c *Controller[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]T, len(c.page.Records))
	copy(records, c.page.Records)

	keys := c.opts.searchKeys
	if len(keys) == 0 && len(records) > 0 {
		keys = derive.SearchKeys(records[0])
	}
	visible := derive.FilterExpr(derive.Filter(records, c.state, keys), c.opts.exprFilter)

	return View[T]{
		State:      c.state.Clone(),
		Records:    records,
		Visible:    visible,
		Total:      c.page.Total,
		LastPage:   c.state.LastPage(c.page.Total),
		Statistics: c.statisticsLocked(records),
		Version:    c.page.Version,
		Loaded:     c.loaded,
		Loading:    c.listCancel != nil,
		LastErr:    c.lastErr,
	}
}

// statisticsLocked overlays server statistics on locally derived cards.
func (c *Controller[T]) statisticsLocked(records []T) models.Statistics {
	derived := derive.PageStatistics(records, c.opts.statusField, c.opts.dateField, c.opts.now(), c.opts.horizonDays)
	derived[derive.StatTotal] = float64(c.page.Total)
	return derive.MergeStatistics(derived, c.stats)
}

// Classify buckets a record's configured date field.
func (c *Controller[T]) Classify(r T) derive.DateClass {
	if c.opts.dateField == "" {
		return derive.ClassNone
	}
	return derive.ClassifyDay(r.DateFields()[c.opts.dateField], c.opts.now(), c.opts.horizonDays)
}
