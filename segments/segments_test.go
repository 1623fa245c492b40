package segments

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		speech, face bool
		want         Mode
	}{
		{true, true, DialogueScene},
		{true, false, VoiceoverWithPicture},
		{false, true, VisualMontage},
		{false, false, VisualMontage},
	}
	for _, c := range cases {
		if got := Classify(c.speech, c.face); got != c.want {
			t.Errorf("Classify(%v, %v) = %s, want %s", c.speech, c.face, got, c.want)
		}
	}
}

func eq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

func checkPartition(t *testing.T, got []ModeInterval, duration float64) {
	t.Helper()
	if duration == 0 {
		if len(got) != 0 {
			t.Fatalf("zero duration: want empty partition, got %v", got)
		}
		return
	}
	if len(got) == 0 {
		t.Fatalf("empty partition for duration %v", duration)
	}
	if !eq(got[0].Start, 0) {
		t.Errorf("partition starts at %v, want 0", got[0].Start)
	}
	if !eq(got[len(got)-1].End, duration) {
		t.Errorf("partition ends at %v, want %v", got[len(got)-1].End, duration)
	}
	for i := range got {
		if got[i].End <= got[i].Start {
			t.Errorf("interval %d inverted: %+v", i, got[i])
		}
		if i == 0 {
			continue
		}
		if !eq(got[i].Start, got[i-1].End) {
			t.Errorf("gap or overlap between %d and %d: %v vs %v",
				i-1, i, got[i-1].End, got[i].Start)
		}
		if got[i].Mode == got[i-1].Mode {
			t.Errorf("adjacent intervals %d and %d share mode %s", i-1, i, got[i].Mode)
		}
	}
}

func TestBuildTimelineSpeechOverFace(t *testing.T) {
	speech := []Interval{{Type: TypeSpeech, Start: 0, End: 10}}
	face := []Interval{{Type: TypeFace, Start: 2, End: 5}}

	got := BuildTimeline(face, speech, 10)
	checkPartition(t, got, 10)

	want := []ModeInterval{
		{Start: 0, End: 2, Mode: VoiceoverWithPicture},
		{Start: 2, End: 5, Mode: DialogueScene},
		{Start: 5, End: 10, Mode: VoiceoverWithPicture},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !eq(got[i].Start, want[i].Start) || !eq(got[i].End, want[i].End) || got[i].Mode != want[i].Mode {
			t.Errorf("interval %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildTimelineNoSpeech(t *testing.T) {
	face := []Interval{{Type: TypeFace, Start: 0, End: 10}}

	got := BuildTimeline(face, nil, 10)
	checkPartition(t, got, 10)

	if len(got) != 1 || got[0].Mode != VisualMontage {
		t.Fatalf("want single VISUAL_MONTAGE interval, got %v", got)
	}
	if !eq(got[0].Start, 0) || !eq(got[0].End, 10) {
		t.Fatalf("want (0,10), got %+v", got[0])
	}
}

func TestBuildTimelineEmptySignals(t *testing.T) {
	got := BuildTimeline(nil, nil, 7.5)
	checkPartition(t, got, 7.5)
	if len(got) != 1 || got[0].Mode != VisualMontage {
		t.Fatalf("want single VISUAL_MONTAGE interval, got %v", got)
	}
}

func TestBuildTimelineZeroDuration(t *testing.T) {
	got := BuildTimeline(nil, nil, 0)
	checkPartition(t, got, 0)
}

func TestBuildTimelineBoundaryDedup(t *testing.T) {
	// Boundaries 3.0 and 3.0000001 are within tolerance and must collapse
	// rather than produce a zero-width interval.
	speech := []Interval{{Type: TypeSpeech, Start: 0, End: 3.0000001}}
	face := []Interval{{Type: TypeFace, Start: 3.0, End: 10}}

	got := BuildTimeline(face, speech, 10)
	checkPartition(t, got, 10)
	for _, iv := range got {
		if iv.End-iv.Start < Epsilon {
			t.Errorf("zero-width interval %+v", iv)
		}
	}
	if len(got) != 2 {
		t.Fatalf("want 2 intervals, got %v", got)
	}
}

func TestBuildTimelineNoFaceTagsIgnored(t *testing.T) {
	// Only active tags assert presence; no_face/no_speech intervals
	// contribute boundaries but never presence.
	face := []Interval{
		{Type: TypeNoFace, Start: 0, End: 4},
		{Type: TypeFace, Start: 4, End: 10},
	}
	speech := []Interval{
		{Type: TypeSpeech, Start: 0, End: 10},
	}
	got := BuildTimeline(face, speech, 10)
	checkPartition(t, got, 10)
	if len(got) != 2 || got[0].Mode != VoiceoverWithPicture || got[1].Mode != DialogueScene {
		t.Fatalf("got %v", got)
	}
}

func TestBuildTimelineGapsInSignal(t *testing.T) {
	// A speech list that does not cover the full duration is absent in the
	// gaps.
	speech := []Interval{
		{Type: TypeSpeech, Start: 1, End: 3},
		{Type: TypeSpeech, Start: 6, End: 8},
	}
	got := BuildTimeline(nil, speech, 10)
	checkPartition(t, got, 10)

	want := []Mode{VisualMontage, VoiceoverWithPicture, VisualMontage, VoiceoverWithPicture, VisualMontage}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i, m := range want {
		if got[i].Mode != m {
			t.Errorf("interval %d mode = %s, want %s", i, got[i].Mode, m)
		}
	}
}

func TestMergeAdjacentIdempotent(t *testing.T) {
	in := []ModeInterval{
		{0, 2, VisualMontage},
		{2, 5, VisualMontage},
		{5, 6, DialogueScene},
		{6, 9, DialogueScene},
		{9, 10, VisualMontage},
	}
	once := MergeAdjacent(in)
	twice := MergeAdjacent(once)
	if len(once) != 3 {
		t.Fatalf("merge: got %v", once)
	}
	if len(twice) != len(once) {
		t.Fatalf("idempotence: %v vs %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("idempotence: interval %d differs: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestMergeAdjacentKeepsGaps(t *testing.T) {
	// Same mode but not touching: must not merge across a gap.
	in := []ModeInterval{
		{0, 2, VisualMontage},
		{5, 7, VisualMontage},
	}
	got := MergeAdjacent(in)
	if len(got) != 2 {
		t.Fatalf("merged across a gap: %v", got)
	}
}

func TestFormatTimecode(t *testing.T) {
	cases := []struct {
		sec  float64
		want string
	}{
		{0, "0:00:00.000"},
		{61.5, "0:01:01.500"},
		{3723.042, "1:02:03.042"},
	}
	for _, c := range cases {
		if got := FormatTimecode(c.sec); got != c.want {
			t.Errorf("FormatTimecode(%v) = %q, want %q", c.sec, got, c.want)
		}
	}
}
