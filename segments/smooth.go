package segments

// Smooth removes intervals shorter than minDuration in a single
// left-to-right pass. A short interval is absorbed by the previously emitted
// interval when there is one (its end is extended); while nothing has been
// emitted yet, the short interval's start is instead carried forward onto
// the next interval, which is then judged with its extended length. A short
// interval that is both first and last has no neighbor and is kept.
//
// This is deliberately one pass, not a repeat-until-stable loop: a fragment
// shortened only as a side effect of a later absorption is not revisited.
// The final adjacent-merge restores maximal runs, since absorption can leave
// two neighbors with the same mode.
func Smooth(partition []ModeInterval, minDuration float64) []ModeInterval {
	var out []ModeInterval
	pendingStart := 0.0
	havePending := false

	for i, iv := range partition {
		if havePending {
			iv.Start = pendingStart
			havePending = false
		}

		if iv.End-iv.Start >= minDuration {
			out = append(out, iv)
			continue
		}

		switch {
		case len(out) > 0:
			out[len(out)-1].End = iv.End
		case i+1 < len(partition):
			pendingStart = iv.Start
			havePending = true
		default:
			out = append(out, iv)
		}
	}
	return MergeAdjacent(out)
}
