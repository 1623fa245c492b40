package segments

import "testing"

func TestSmoothAbsorbForwardAtStart(t *testing.T) {
	in := []ModeInterval{
		{0, 0.4, DialogueScene},
		{0.4, 5, VoiceoverWithPicture},
		{5, 10, DialogueScene},
	}
	got := Smooth(in, 1.0)
	checkPartition(t, got, 10)

	want := []ModeInterval{
		{0, 5, VoiceoverWithPicture},
		{5, 10, DialogueScene},
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

func TestSmoothAbsorbBackwardThenMerge(t *testing.T) {
	in := []ModeInterval{
		{0, 5, VisualMontage},
		{5, 5.5, DialogueScene},
		{5.5, 10, VisualMontage},
	}
	got := Smooth(in, 1.0)
	checkPartition(t, got, 10)

	if len(got) != 1 || got[0].Mode != VisualMontage {
		t.Fatalf("want single (0,10,VISUAL_MONTAGE), got %v", got)
	}
	if !eq(got[0].Start, 0) || !eq(got[0].End, 10) {
		t.Fatalf("want (0,10), got %+v", got[0])
	}
}

func TestSmoothSingleShortIntervalKept(t *testing.T) {
	in := []ModeInterval{{0, 0.5, DialogueScene}}
	got := Smooth(in, 1.0)
	if len(got) != 1 || got[0] != in[0] {
		t.Fatalf("lone short interval must survive, got %v", got)
	}
}

func TestSmoothNoShortFragments(t *testing.T) {
	in := []ModeInterval{
		{0, 3, VisualMontage},
		{3, 7, DialogueScene},
		{7, 10, VoiceoverWithPicture},
	}
	got := Smooth(in, 1.0)
	if len(got) != len(in) {
		t.Fatalf("nothing to smooth, got %v", got)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("interval %d changed: %+v vs %+v", i, in[i], got[i])
		}
	}
}

func TestSmoothChainOfShortsSinglePass(t *testing.T) {
	// Several consecutive short fragments all fold into the first kept
	// interval in one sweep.
	in := []ModeInterval{
		{0, 4, VisualMontage},
		{4, 4.3, DialogueScene},
		{4.3, 4.6, VoiceoverWithPicture},
		{4.6, 4.9, DialogueScene},
		{4.9, 10, VoiceoverWithPicture},
	}
	got := Smooth(in, 1.0)
	checkPartition(t, got, 10)

	want := []ModeInterval{
		{0, 4.9, VisualMontage},
		{4.9, 10, VoiceoverWithPicture},
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

func TestSmoothLeadingShortRun(t *testing.T) {
	// While nothing has been emitted, each short fragment pushes its start
	// onto the next one; the run collapses into the first long interval.
	in := []ModeInterval{
		{0, 0.3, DialogueScene},
		{0.3, 0.6, VisualMontage},
		{0.6, 8, VoiceoverWithPicture},
		{8, 10, VisualMontage},
	}
	got := Smooth(in, 1.0)
	checkPartition(t, got, 10)

	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if !eq(got[0].Start, 0) || !eq(got[0].End, 8) || got[0].Mode != VoiceoverWithPicture {
		t.Errorf("first interval: got %+v", got[0])
	}
}

func TestSmoothPreservesCoverageAndCount(t *testing.T) {
	in := []ModeInterval{
		{0, 0.2, DialogueScene},
		{0.2, 3, VisualMontage},
		{3, 3.5, VoiceoverWithPicture},
		{3.5, 6, DialogueScene},
		{6, 6.1, VisualMontage},
		{6.1, 10, DialogueScene},
	}
	got := Smooth(in, 1.0)
	checkPartition(t, got, 10)
	if len(got) > len(in) {
		t.Errorf("smoothing grew the partition: %d -> %d", len(in), len(got))
	}
}

func TestValidateSignal(t *testing.T) {
	cases := []struct {
		name      string
		intervals []Interval
		wantErr   bool
	}{
		{"empty", nil, false},
		{"ok", []Interval{
			{Type: TypeSpeech, Start: 0, End: 2},
			{Type: TypeNoSpeech, Start: 2, End: 4},
			{Type: TypeSpeech, Start: 4, End: 6},
		}, false},
		{"inverted", []Interval{{Type: TypeSpeech, Start: 3, End: 3}}, true},
		{"negative start", []Interval{{Type: TypeSpeech, Start: -1, End: 3}}, true},
		{"overlapping active", []Interval{
			{Type: TypeSpeech, Start: 0, End: 5},
			{Type: TypeSpeech, Start: 4, End: 8},
		}, true},
	}
	for _, c := range cases {
		err := ValidateSignal(c.intervals, TypeSpeech)
		if (err != nil) != c.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestClamp(t *testing.T) {
	in := []Interval{
		{Type: TypeFace, Start: 0, End: 4},
		{Type: TypeFace, Start: 5, End: 12},
		{Type: TypeFace, Start: 11, End: 14},
	}
	got := Clamp(in, 10)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if !eq(got[1].End, 10) {
		t.Errorf("end not clamped: %+v", got[1])
	}
	if len(in) != 3 || !eq(in[1].End, 12) {
		t.Errorf("input mutated: %v", in)
	}
}
