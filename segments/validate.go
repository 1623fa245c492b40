package segments

import (
	"errors"
	"fmt"
)

// ErrMalformedInterval marks a presence-interval list the core must not see:
// inverted bounds, unsorted starts, or overlapping active intervals.
var ErrMalformedInterval = errors.New("malformed interval")

// ValidateSignal rejects interval lists the consolidation contract does not
// cover. Within one signal, intervals must have end > start and the ones
// tagged active must be sorted and disjoint. Gaps are fine; an empty list is
// a signal that is absent everywhere.
func ValidateSignal(intervals []Interval, active string) error {
	lastActiveEnd := -1.0
	for i, iv := range intervals {
		if iv.End <= iv.Start {
			return fmt.Errorf("%w: %s[%d] end %.6f <= start %.6f",
				ErrMalformedInterval, iv.Type, i, iv.End, iv.Start)
		}
		if iv.Start < 0 {
			return fmt.Errorf("%w: %s[%d] negative start %.6f",
				ErrMalformedInterval, iv.Type, i, iv.Start)
		}
		if iv.Type != active {
			continue
		}
		if iv.Start < lastActiveEnd-Epsilon {
			return fmt.Errorf("%w: %s[%d] overlaps previous %s interval",
				ErrMalformedInterval, iv.Type, i, active)
		}
		lastActiveEnd = iv.End
	}
	return nil
}

// Clamp trims intervals against the authoritative duration: ends past the
// duration are pulled back, intervals starting at or beyond it are dropped.
// The input slice is not modified.
func Clamp(intervals []Interval, duration float64) []Interval {
	out := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Start >= duration {
			continue
		}
		if iv.End > duration {
			iv.End = duration
		}
		if iv.End-iv.Start < Epsilon {
			continue
		}
		out = append(out, iv)
	}
	return out
}
