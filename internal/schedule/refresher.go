// Package schedule drives periodic list refreshes for watch mode.
package schedule

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aerohr/console/internal/listview"
)

// Target is a list controller that can be refreshed.
type Target interface {
	Refresh(ctx context.Context) listview.Result
	RefreshStatistics(ctx context.Context) listview.Result
}

// Refresher re-fetches a list and its statistics on a cron schedule. Runs
// never overlap: a tick that arrives while the previous refresh is still in
// flight is skipped.
type Refresher struct {
	target   Target
	spec     string
	onResult func(listview.Result)

	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	running bool
	busy    bool
}

// ParseSchedule validates a standard five-field cron expression.
func ParseSchedule(spec string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}
	return schedule, nil
}

// NextRun returns the next activation of spec after now.
func NextRun(spec string, now time.Time) (time.Time, error) {
	schedule, err := ParseSchedule(spec)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Next(now), nil
}

// NewRefresher creates a stopped refresher. onResult receives every refresh
// result, including failures; it may be nil.
func NewRefresher(target Target, spec string, onResult func(listview.Result)) (*Refresher, error) {
	schedule, err := ParseSchedule(spec)
	if err != nil {
		return nil, err
	}
	r := &Refresher{
		target:   target,
		spec:     spec,
		onResult: onResult,
		cron:     cron.New(),
	}
	r.cron.Schedule(schedule, cron.FuncJob(r.Tick))
	return r, nil
}

// Start begins scheduling. It does not block.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.running = true
	r.cron.Start()
	log.Printf("⏰ Auto refresh scheduled (%s)", r.spec)
}

// Stop halts scheduling, cancels an in-flight refresh and waits for it.
func (r *Refresher) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	cancel := r.cancel
	r.mu.Unlock()

	cancel()
	<-r.cron.Stop().Done()
	log.Println("⏰ Auto refresh stopped")
}

// Tick runs one refresh now unless one is already in flight.
func (r *Refresher) Tick() {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		log.Println("⏰ Skipping refresh: previous run still in flight")
		return
	}
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	r.busy = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
	}()

	for _, res := range []listview.Result{r.target.Refresh(ctx), r.target.RefreshStatistics(ctx)} {
		if r.onResult != nil {
			r.onResult(res)
		}
	}
}
