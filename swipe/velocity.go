package swipe

import "time"

// velocityWindow bounds how far back samples count toward release velocity.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	x  int
	at time.Time
}

// velocityTracker estimates horizontal pointer velocity from recent samples.
type velocityTracker struct {
	samples []sample
}

func (t *velocityTracker) reset() {
	t.samples = t.samples[:0]
}

func (t *velocityTracker) add(x int, at time.Time) {
	t.samples = append(t.samples, sample{x: x, at: at})

	cutoff := at.Add(-velocityWindow)
	drop := 0
	for drop < len(t.samples)-2 && t.samples[drop].at.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		t.samples = append(t.samples[:0], t.samples[drop:]...)
	}
}

// velocity returns units per second between the oldest retained sample and
// the newest one. A release long after the last movement reads as zero.
func (t *velocityTracker) velocity(at time.Time) float64 {
	if len(t.samples) < 2 {
		return 0
	}
	last := t.samples[len(t.samples)-1]
	if at.Sub(last.at) > velocityWindow {
		return 0
	}
	first := t.samples[0]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(last.x-first.x) / dt
}
