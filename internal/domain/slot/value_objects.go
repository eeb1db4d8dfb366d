package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
	ErrInvalidStatus     = errors.New("invalid slot status")
)

// TimeWindow is a half-open interval [start, end).
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether the window intersects [from, to).
// Either bound may be zero, meaning unbounded on that side.
func (w TimeWindow) Overlaps(from, to time.Time) bool {
	if !to.IsZero() && !w.start.Before(to) {
		return false
	}
	if !from.IsZero() && !w.end.After(from) {
		return false
	}
	return true
}
