package segments

import "fmt"

// FormatTimecode renders seconds as H:MM:SS.mmm, the same shape the
// detectors put in their start_timecode/end_timecode fields.
func FormatTimecode(seconds float64) string {
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := seconds - float64(hours*3600+minutes*60)
	return fmt.Sprintf("%d:%02d:%06.3f", hours, minutes, secs)
}
