package clients

import (
	"context"
	"strconv"
)

// Face runs the face-presence detector on the video and returns face/no_face
// intervals covering the whole duration.
func (h *HTTP) Face(ctx context.Context, url, videoPath string, confidence float64) (*SignalResp, error) {
	fields := map[string]string{
		"confidence": strconv.FormatFloat(confidence, 'f', -1, 64),
	}
	return h.postVideo(ctx, "face", url+"/detect-faces", videoPath, fields)
}
