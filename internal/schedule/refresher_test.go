package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohr/console/internal/listview"
)

type fakeTarget struct {
	mu        sync.Mutex
	refreshes int
	stats     int
	block     chan struct{}
	entered   chan struct{}
}

func (f *fakeTarget) Refresh(ctx context.Context) listview.Result {
	f.mu.Lock()
	f.refreshes++
	block := f.block
	f.mu.Unlock()
	if block != nil {
		f.entered <- struct{}{}
		<-block
	}
	return listview.Result{Action: listview.ActionRefresh, OK: true}
}

func (f *fakeTarget) RefreshStatistics(ctx context.Context) listview.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats++
	return listview.Result{Action: listview.ActionStatistics, OK: true}
}

func (f *fakeTarget) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes, f.stats
}

func TestParseSchedule(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr bool
	}{
		{"*/5 * * * *", false},
		{"@every 30s", false},
		{"@hourly", false},
		{"0 9 * * 1-5", false},
		{"* * *", true},
		{"not a schedule", true},
		{"61 * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := ParseSchedule(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNextRun(t *testing.T) {
	now := time.Date(2024, time.June, 3, 8, 59, 30, 0, time.UTC)

	next, err := NextRun("0 9 * * *", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), next)

	next, err = NextRun("*/15 * * * *", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), next)

	_, err = NextRun("bogus", now)
	assert.Error(t, err)
}

func TestNewRefresher_RejectsInvalidSpec(t *testing.T) {
	_, err := NewRefresher(&fakeTarget{}, "every now and then", nil)
	assert.Error(t, err)
}

func TestTick_RefreshesListAndStatistics(t *testing.T) {
	target := &fakeTarget{}
	var results []listview.Result
	r, err := NewRefresher(target, "@every 1h", func(res listview.Result) { results = append(results, res) })
	require.NoError(t, err)

	r.Tick()

	refreshes, stats := target.counts()
	assert.Equal(t, 1, refreshes)
	assert.Equal(t, 1, stats)
	require.Len(t, results, 2)
	assert.Equal(t, listview.ActionRefresh, results[0].Action)
	assert.Equal(t, listview.ActionStatistics, results[1].Action)
}

func TestTick_SkipsWhileBusy(t *testing.T) {
	target := &fakeTarget{block: make(chan struct{}), entered: make(chan struct{}, 1)}
	r, err := NewRefresher(target, "@every 1h", nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		r.Tick()
		close(done)
	}()
	<-target.entered

	r.Tick()
	refreshes, _ := target.counts()
	assert.Equal(t, 1, refreshes, "overlapping tick skipped")

	close(target.block)
	<-done

	target.mu.Lock()
	target.block = nil
	target.mu.Unlock()
	r.Tick()
	refreshes, stats := target.counts()
	assert.Equal(t, 2, refreshes)
	assert.Equal(t, 2, stats)
}

func TestStartStop(t *testing.T) {
	r, err := NewRefresher(&fakeTarget{}, "@every 1h", nil)
	require.NoError(t, err)

	r.Start(context.Background())
	r.Start(context.Background())
	r.Stop()
	r.Stop()
}
