// Package geo supplies the device's current coordinates.
package geo

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatString renders the latitude with the minimal digits that round-trip.
func (l Location) LatString() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64)
}

// LngString renders the longitude with the minimal digits that round-trip.
func (l Location) LngString() string {
	return strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// Source performs a single location read.
type Source interface {
	Locate(ctx context.Context) (Location, error)
}

// Snapshot is an immutable view of the provider at one point in time.
type Snapshot struct {
	Location  *Location
	Loading   bool
	Error     string
	UpdatedAt time.Time
}

// Provider keeps the last known location together with the loading flag and
// the last error. Errors are kept as strings so the UI can show them and
// offer a retry.
type Provider struct {
	mu        sync.RWMutex
	source    Source
	location  *Location
	loading   bool
	err       string
	updatedAt time.Time
	now       func() time.Time
	onChange  func()
}

func NewProvider(source Source) *Provider {
	return &Provider{source: source, now: time.Now}
}

// OnChange registers a callback run when loading starts and when a reading
// (or error) is stored.
func (p *Provider) OnChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onChange = fn
}

// Refresh asks the source for a new reading. Overlapping calls are not
// deduplicated; the last one to finish wins.
func (p *Provider) Refresh(ctx context.Context) Snapshot {
	p.mu.Lock()
	p.loading = true
	notify := p.onChange
	p.mu.Unlock()
	if notify != nil {
		notify()
	}

	loc, err := p.source.Locate(ctx)

	p.mu.Lock()
	p.loading = false
	p.updatedAt = p.now()
	if err != nil {
		p.err = err.Error()
	} else {
		p.err = ""
		p.location = &loc
	}
	snap := p.snapshotLocked()
	notify = p.onChange
	p.mu.Unlock()

	if notify != nil {
		notify()
	}
	return snap
}

// Snapshot returns the current state.
func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

// Current returns the last known location, or nil if none was read yet.
func (p *Provider) Current() *Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

func (p *Provider) snapshotLocked() Snapshot {
	s := Snapshot{
		Loading:   p.loading,
		Error:     p.err,
		UpdatedAt: p.updatedAt,
	}
	if p.location != nil {
		loc := *p.location
		s.Location = &loc
	}
	return s
}
