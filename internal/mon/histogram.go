package mon

import (
	"sync/atomic"
)

const (
	ringShift = 8 // 256 elements
	ringElems = 1 << ringShift
	ringMask  = ringElems - 1
)

// Histogram is a ring of the most recently observed durations, in
// nanoseconds. It is safe for concurrent use even though the generators
// it times are not; the concurrency only matters for tooling that reads
// timings from another goroutine.
type Histogram struct {
	total   int64
	current int64
	durs    [ringElems]int64
}

// start should be called before done, to keep track of in-flight calls.
func (h *Histogram) start() { atomic.AddInt64(&h.current, 1) }

// done stores the duration in the ring, incrementing the count.
func (h *Histogram) done(dur int64) {
	loc := &h.durs[(atomic.AddInt64(&h.total, 1)-1)&ringMask]
	atomic.StoreInt64(loc, dur)
	atomic.AddInt64(&h.current, -1)
}

// Total returns how many durations have ever been recorded.
func (h *Histogram) Total() int64 { return atomic.LoadInt64(&h.total) }

// Current returns how many recordings are in flight.
func (h *Histogram) Current() int64 { return atomic.LoadInt64(&h.current) }

// dursLen returns the number of valid entries in the ring.
func (h *Histogram) dursLen() int {
	n := h.Total()
	if n > ringElems {
		return ringElems
	}
	return int(n & ringMask)
}

// Durations returns a copy of the observed durations.
func (h *Histogram) Durations() []int64 {
	out := make([]int64, h.dursLen())
	for i := range out {
		out[i] = atomic.LoadInt64(&h.durs[i&ringMask])
	}
	return out
}

// Average returns the average recorded duration in nanoseconds.
func (h *Histogram) Average() float64 {
	total := int64(0)
	n := h.dursLen()
	for i := 0; i < n; i++ {
		total += atomic.LoadInt64(&h.durs[i])
	}
	return float64(total) / float64(n)
}

// Max returns the largest duration still in the ring.
func (h *Histogram) Max() int64 {
	max := int64(0)
	n := h.dursLen()
	for i := 0; i < n; i++ {
		if d := atomic.LoadInt64(&h.durs[i]); d > max {
			max = d
		}
	}
	return max
}
