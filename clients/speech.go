package clients

import (
	"context"
	"strconv"
)

// Speech runs the speech-presence detector on the video and returns
// speech/no_speech intervals. maxGap is the silence length (seconds) the
// detector may bridge inside one speech interval.
func (h *HTTP) Speech(ctx context.Context, url, videoPath string, maxGap float64) (*SignalResp, error) {
	fields := map[string]string{
		"max_gap": strconv.FormatFloat(maxGap, 'f', -1, 64),
	}
	return h.postVideo(ctx, "speech", url+"/detect-speech", videoPath, fields)
}
