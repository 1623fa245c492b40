package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cocr/scene-consolidator/clients"
	cfg "github.com/cocr/scene-consolidator/config"
	"github.com/cocr/scene-consolidator/segments"
	"github.com/cocr/scene-consolidator/store"
)

// ErrMissingDuration means neither signal carried a usable duration.
var ErrMissingDuration = errors.New("missing duration")

type Pipeline struct {
	cfg   *cfg.Root
	http  *clients.HTTP
	store *store.Store
	log   *logrus.Logger
}

func NewPipeline(c *cfg.Root, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{
		cfg:  c,
		http: clients.NewHTTP(cfg.DurSeconds(c.Server.ClientTimeout)),
		log:  log,
	}
}

// AttachStore enables run-history recording.
func (p *Pipeline) AttachStore(s *store.Store) { p.store = s }

// Run obtains both presence signals, consolidates them into a mode timeline,
// smooths small fragments, and persists the result.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	face, err := p.faceSignal(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("face signal: %w", err)
	}
	speech, err := p.speechSignal(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech signal: %w", err)
	}

	duration, err := resolveDuration(face, speech)
	if err != nil {
		return nil, err
	}

	if err := segments.ValidateSignal(face.Intervals, segments.TypeFace); err != nil {
		return nil, fmt.Errorf("face signal: %w", err)
	}
	if err := segments.ValidateSignal(speech.Intervals, segments.TypeSpeech); err != nil {
		return nil, fmt.Errorf("speech signal: %w", err)
	}

	faceIvs := segments.Clamp(face.Intervals, duration)
	speechIvs := segments.Clamp(speech.Intervals, duration)

	minDur := req.MinDuration
	if minDur <= 0 {
		minDur = p.cfg.Smoothing.MinDuration
	}

	timeline := segments.BuildTimeline(faceIvs, speechIvs, duration)
	smoothed := segments.Smooth(timeline, minDur)

	res := &Result{
		Segments: smoothed,
		Duration: duration,
		RunID:    uuid.NewString(),
	}

	p.log.WithFields(logrus.Fields{
		"run":      res.RunID,
		"video":    req.Video,
		"duration": segments.FormatTimecode(duration),
		"raw":      len(timeline),
		"smoothed": len(smoothed),
	}).Info("timeline consolidated")

	if p.cfg.Paths.Outputs != "" {
		outDir, err := persist(p.cfg.Paths.Outputs, req, res, minDur)
		if err != nil {
			return nil, fmt.Errorf("persist: %w", err)
		}
		res.OutDir = outDir
		p.log.WithField("dir", outDir).Debug("run persisted")
	}

	if p.store != nil {
		err := p.store.RecordRun(store.Run{
			ID:        res.RunID,
			Video:     req.Video,
			Duration:  duration,
			Segments:  smoothed,
			CreatedAt: time.Now(),
		})
		if err != nil {
			// History is best-effort; the result itself is already computed.
			p.log.WithError(err).Warn("record run")
		}
	}

	return res, nil
}

func (p *Pipeline) faceSignal(ctx context.Context, req Request) (*Signal, error) {
	if req.FaceJSON != "" {
		return LoadSignalFile(req.FaceJSON)
	}
	url := p.cfg.Services.Face.URL
	if url == "" {
		return nil, errors.New("no face service configured and no precomputed JSON given")
	}
	resp, err := p.http.Face(ctx, url, req.Video, p.cfg.Detection.FaceConfidence)
	if err != nil {
		return nil, err
	}
	return fromResp(resp), nil
}

func (p *Pipeline) speechSignal(ctx context.Context, req Request) (*Signal, error) {
	if req.SpeechJSON != "" {
		return LoadSignalFile(req.SpeechJSON)
	}
	url := p.cfg.Services.Speech.URL
	if url == "" {
		return nil, errors.New("no speech service configured and no precomputed JSON given")
	}
	resp, err := p.http.Speech(ctx, url, req.Video, p.cfg.Detection.SpeechMaxGap)
	if err != nil {
		return nil, err
	}
	return fromResp(resp), nil
}

// resolveDuration picks the authoritative timeline length: the face
// detector's duration when it has one, else the speech detector's.
func resolveDuration(face, speech *Signal) (float64, error) {
	if face.Duration > 0 {
		return face.Duration, nil
	}
	if speech.Duration > 0 {
		return speech.Duration, nil
	}
	return 0, ErrMissingDuration
}
