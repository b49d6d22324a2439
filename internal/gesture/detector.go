// Package gesture turns rapid repeated presses of the SOS control into a
// single trigger.
package gesture

import (
	"sync"
	"time"

	"github.com/Rorical/SafeHer/internal/clock"
)

const (
	DefaultThreshold = 3
	DefaultWindow    = 1500 * time.Millisecond
)

// TriggerEvent is emitted when the tap threshold is reached.
type TriggerEvent struct {
	At    time.Time
	Count int
}

// Detector counts taps inside a rolling debounce window. Each tap restarts
// the window; reaching the threshold fires a TriggerEvent and resets the
// count, letting the window lapse resets it silently.
type Detector struct {
	mu        sync.Mutex
	clock     clock.Clock
	threshold int
	window    time.Duration
	count     int
	reset     clock.Timer
	gen       uint64
	onReset   func()
}

// NewDetector returns a detector. A threshold below 1 or a non-positive
// window falls back to the defaults.
func NewDetector(c clock.Clock, threshold int, window time.Duration) *Detector {
	if c == nil {
		c = clock.Real()
	}
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Detector{
		clock:     c,
		threshold: threshold,
		window:    window,
	}
}

// OnReset registers a callback run after the window lapses and the count
// drops back to zero. It runs on the clock's goroutine.
func (d *Detector) OnReset(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onReset = fn
}

// RegisterTap records one press and reports whether it completed the gesture.
func (d *Detector) RegisterTap() (TriggerEvent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.count++
	d.stopTimerLocked()

	if d.count >= d.threshold {
		ev := TriggerEvent{At: d.clock.Now(), Count: d.count}
		d.count = 0
		return ev, true
	}

	d.gen++
	gen := d.gen
	d.reset = d.clock.AfterFunc(d.window, func() { d.expire(gen) })
	return TriggerEvent{}, false
}

func (d *Detector) expire(gen uint64) {
	d.mu.Lock()
	// A tap, trigger or Stop may have superseded this timer between firing
	// and locking.
	if d.reset == nil || d.gen != gen {
		d.mu.Unlock()
		return
	}
	d.reset = nil
	d.count = 0
	fn := d.onReset
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Count returns the taps seen in the current window.
func (d *Detector) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}

func (d *Detector) Threshold() int {
	return d.threshold
}

func (d *Detector) Window() time.Duration {
	return d.window
}

// Stop cancels the pending reset timer, if any.
func (d *Detector) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopTimerLocked()
}

func (d *Detector) stopTimerLocked() {
	if d.reset != nil {
		d.reset.Stop()
		d.reset = nil
	}
}
