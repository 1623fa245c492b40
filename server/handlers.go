package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cocr/scene-consolidator/orchestrator"
	"github.com/cocr/scene-consolidator/segments"
)

type analyzeRequest struct {
	VideoPath   string  `json:"video_path"`
	FaceJSON    string  `json:"face_json,omitempty"`
	SpeechJSON  string  `json:"speech_json,omitempty"`
	MinDuration float64 `json:"min_duration,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.VideoPath == "" {
		writeError(w, http.StatusBadRequest, "video_path required")
		return
	}

	// The video file itself is only needed when a detector has to run;
	// with both signals precomputed the path is just a label.
	needsDetector := req.FaceJSON == "" || req.SpeechJSON == ""
	if needsDetector {
		if _, err := os.Stat(req.VideoPath); err != nil {
			writeError(w, http.StatusNotFound, "video not found")
			return
		}
	}

	s.runAndRespond(w, r, orchestrator.Request{
		Video:       req.VideoPath,
		FaceJSON:    req.FaceJSON,
		SpeechJSON:  req.SpeechJSON,
		MinDuration: req.MinDuration,
	})
}

// handleUpload accepts a multipart upload (field "video"), stores it in a
// temp file for the detectors, and removes it afterwards.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if s.cfg.Server.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no video file provided (field name: video)")
		return
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".mp4"
	}
	tmp, err := os.CreateTemp("", "upload_*"+ext)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.runAndRespond(w, r, orchestrator.Request{Video: tmpPath})
}

func (s *Server) runAndRespond(w http.ResponseWriter, r *http.Request, req orchestrator.Request) {
	res, err := s.pipe.Run(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, orchestrator.ErrMissingDuration) ||
			errors.Is(err, segments.ErrMalformedInterval) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.store == nil {
		writeError(w, http.StatusNotFound, "run history not enabled")
		return
	}

	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := parsePositiveInt(q); err == nil {
			limit = n
		}
	}

	runs, err := s.store.RecentRuns(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	type runOut struct {
		ID        string                  `json:"id"`
		Video     string                  `json:"video"`
		Duration  float64                 `json:"duration"`
		Segments  []segments.ModeInterval `json:"segments"`
		CreatedAt string                  `json:"created_at"`
	}
	out := make([]runOut, 0, len(runs))
	for _, run := range runs {
		out = append(out, runOut{
			ID:        run.ID,
			Video:     run.Video,
			Duration:  run.Duration,
			Segments:  run.Segments,
			CreatedAt: run.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": out})
}
