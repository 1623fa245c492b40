package orchestrator

import (
	"github.com/cocr/scene-consolidator/clients"
	"github.com/cocr/scene-consolidator/segments"
)

// Request names one video and how its presence signals are obtained. A
// precomputed JSON path bypasses the corresponding detector service.
type Request struct {
	Video       string
	FaceJSON    string
	SpeechJSON  string
	MinDuration float64 // <= 0 means the configured default
}

// Signal is one detector output normalized for the core.
type Signal struct {
	Duration  float64
	Intervals []segments.Interval
}

func fromResp(r *clients.SignalResp) *Signal {
	s := &Signal{Duration: r.Duration}
	for _, seg := range r.Segments {
		s.Intervals = append(s.Intervals, segments.Interval{
			Type:  seg.Type,
			Start: seg.Start,
			End:   seg.End,
		})
	}
	return s
}

// Result is the consolidated timeline for one video. Segments and Duration
// form the output payload; the rest is run bookkeeping.
type Result struct {
	Segments []segments.ModeInterval `json:"segments"`
	Duration float64                 `json:"duration"`

	RunID  string `json:"-"`
	OutDir string `json:"-"`
}
