// Package segments consolidates face-presence and speech-presence intervals
// into a single timeline of narrative modes. All functions are pure and
// operate on float seconds.
package segments

import "sort"

// Mode is a narrative classification for a stretch of video.
type Mode string

const (
	VoiceoverWithPicture Mode = "VOICEOVER_WITH_PICTURE"
	DialogueScene        Mode = "DIALOGUE_SCENE"
	VisualMontage        Mode = "VISUAL_MONTAGE"
)

// Presence-interval type tags, matching the detector JSON output.
const (
	TypeFace     = "face"
	TypeNoFace   = "no_face"
	TypeSpeech   = "speech"
	TypeNoSpeech = "no_speech"
)

// Epsilon is the tolerance for boundary comparisons. Timestamps closer than
// this are the same boundary.
const Epsilon = 1e-6

// Interval is a half-open [Start, End) presence interval for one signal.
type Interval struct {
	Type  string  `json:"type"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ModeInterval is one entry of a consolidated timeline.
type ModeInterval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Mode  Mode    `json:"mode"`
}

// Classify maps the two presence booleans to a mode. Face presence is
// irrelevant whenever speech is absent.
func Classify(speechPresent, facePresent bool) Mode {
	if !speechPresent {
		return VisualMontage
	}
	if facePresent {
		return DialogueScene
	}
	return VoiceoverWithPicture
}

// presentAt reports whether any interval tagged active covers t. Points not
// covered by an active interval are absent, so a signal with no intervals is
// absent everywhere.
func presentAt(intervals []Interval, active string, t float64) bool {
	for _, iv := range intervals {
		if iv.Type == active && iv.Start <= t && t < iv.End {
			return true
		}
	}
	return false
}

// BuildTimeline partitions [0, duration) into mode intervals from the two
// presence signals. Every start/end of either signal becomes a boundary;
// each resulting sub-interval is classified by sampling both signals at its
// midpoint, which no other boundary can split. A duration of zero yields an
// empty timeline.
func BuildTimeline(face, speech []Interval, duration float64) []ModeInterval {
	bounds := make([]float64, 0, 2+2*len(face)+2*len(speech))
	bounds = append(bounds, 0, duration)
	for _, iv := range face {
		bounds = append(bounds, iv.Start, iv.End)
	}
	for _, iv := range speech {
		bounds = append(bounds, iv.Start, iv.End)
	}
	sort.Float64s(bounds)

	// Dedup within Epsilon so near-equal boundaries from the two detectors
	// do not produce zero-width slivers.
	grid := bounds[:0]
	for _, b := range bounds {
		if len(grid) == 0 || b-grid[len(grid)-1] >= Epsilon {
			grid = append(grid, b)
		}
	}

	var out []ModeInterval
	for i := 0; i+1 < len(grid); i++ {
		a, b := grid[i], grid[i+1]
		mid := (a + b) / 2
		mode := Classify(
			presentAt(speech, TypeSpeech, mid),
			presentAt(face, TypeFace, mid),
		)
		out = append(out, ModeInterval{Start: a, End: b, Mode: mode})
	}
	return MergeAdjacent(out)
}

// MergeAdjacent collapses consecutive intervals that share a mode and whose
// boundary timestamps touch within Epsilon, producing maximal runs. It is
// idempotent.
func MergeAdjacent(intervals []ModeInterval) []ModeInterval {
	var merged []ModeInterval
	for _, iv := range intervals {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.Mode == iv.Mode && abs(iv.Start-last.End) < Epsilon {
				last.End = iv.End
				continue
			}
		}
		merged = append(merged, iv)
	}
	return merged
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
