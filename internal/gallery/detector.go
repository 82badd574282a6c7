package gallery

import (
	"sync"
	"time"
)

// PositionSource reports the viewer's current coordinate along the hall
// axis. ok is false while no valid camera reference exists.
type PositionSource func() (position float64, ok bool)

// Detector recomputes proximity state on a fixed cadence instead of on
// every position update. When the position source or layout is
// unavailable it skips the poll and keeps the previous state rather than
// resetting to a false positive.
type Detector struct {
	source    PositionSource
	threshold float64
	interval  time.Duration

	mu     sync.RWMutex
	layout *Layout
	state  State

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func NewDetector(source PositionSource, layout *Layout, threshold float64, interval time.Duration) *Detector {
	return &Detector{
		source:    source,
		threshold: threshold,
		interval:  interval,
		layout:    layout,
		state:     InitialState(),
		done:      make(chan struct{}),
	}
}

// Start begins the polling loop. It is a no-op if called twice.
func (d *Detector) Start() {
	if d.ticker != nil {
		return
	}
	d.ticker = time.NewTicker(d.interval)
	d.wg.Add(1)
	go d.loop()
}

func (d *Detector) loop() {
	defer d.wg.Done()
	for {
		select {
		case <-d.ticker.C:
			d.poll()
		case <-d.done:
			return
		}
	}
}

func (d *Detector) poll() {
	pos, ok := d.source()
	if !ok {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.layout == nil {
		return
	}
	d.state = Poll(pos, d.layout, d.threshold)
}

// SetLayout swaps the layout the detector polls against. A nil layout
// suspends polling until a new one arrives.
func (d *Detector) SetLayout(l *Layout) {
	d.mu.Lock()
	d.layout = l
	d.mu.Unlock()
}

func (d *Detector) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Stop cancels the polling loop and waits for it to exit. The detector
// must be stopped when its owning view is torn down; otherwise the
// recurring task keeps a stale camera handle alive.
func (d *Detector) Stop() {
	d.once.Do(func() {
		if d.ticker != nil {
			d.ticker.Stop()
		}
		close(d.done)
	})
	d.wg.Wait()
}
