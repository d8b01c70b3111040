package mon

import "time"

// Thunk is a histogram meant to be declared as a package-level var next
// to the function it times, with no registration ceremony.
type Thunk struct {
	his Histogram
}

// Start begins a timing. Stop the returned timer to record it.
func (t *Thunk) Start() Timer {
	t.his.start()
	return Timer{his: &t.his, start: time.Now()}
}

// Histogram returns the thunk's histogram.
func (t *Thunk) Histogram() *Histogram { return &t.his }

// Timer is an in-flight timing started by a Thunk.
type Timer struct {
	his   *Histogram
	start time.Time
}

// Stop records the duration since Start.
func (t Timer) Stop() {
	t.his.done(time.Since(t.start).Nanoseconds())
}
