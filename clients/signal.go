package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// SignalSeg is one presence interval as the detectors emit it. The timecode
// fields are informational and ignored downstream.
type SignalSeg struct {
	Type          string  `json:"type"`
	Start         float64 `json:"start"`
	End           float64 `json:"end"`
	StartTimecode string  `json:"start_timecode,omitempty"`
	EndTimecode   string  `json:"end_timecode,omitempty"`
}

// SignalResp is the common detector response shape.
type SignalResp struct {
	Video    string      `json:"video,omitempty"`
	Duration float64     `json:"duration"`
	Segments []SignalSeg `json:"segments"`
}

// postVideo uploads the video as multipart field "video" with extra form
// fields and decodes the detector's SignalResp.
func (h *HTTP) postVideo(ctx context.Context, name, url, videoPath string, fields map[string]string) (*SignalResp, error) {
	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	fw, err := w.CreateFormFile("video", filepath.Base(videoPath))
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(videoPath)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	if _, err = io.Copy(fw, fd); err != nil {
		return nil, err
	}
	for k, v := range fields {
		if err = w.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &b)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s %s: %s", name, resp.Status, string(body))
	}

	var out SignalResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}
	return &out, nil
}
