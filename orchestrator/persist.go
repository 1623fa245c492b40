package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cocr/scene-consolidator/segments"
)

// Manifest describes one persisted run next to its segments.json.
type Manifest struct {
	RunID       string             `yaml:"run_id"`
	Video       string             `yaml:"video"`
	GeneratedAt time.Time          `yaml:"generated_at"`
	Duration    float64            `yaml:"duration"`
	MinDuration float64            `yaml:"min_duration"`
	Segments    int                `yaml:"segments"`
	ModeTotals  map[string]float64 `yaml:"mode_totals"`
}

func mkRunDir(outputsRoot, runID string) (string, error) {
	ts := time.Now().Format("20060102-150405")
	dir := filepath.Join(outputsRoot, "run_"+ts+"_"+runID[:8])
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(v)
}

func persist(outputsRoot string, req Request, res *Result, minDur float64) (string, error) {
	dir, err := mkRunDir(outputsRoot, res.RunID)
	if err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(dir, "segments.json"), res); err != nil {
		return "", err
	}

	totals := map[string]float64{}
	for _, s := range res.Segments {
		totals[string(s.Mode)] += s.End - s.Start
	}
	m := Manifest{
		RunID:       res.RunID,
		Video:       req.Video,
		GeneratedAt: time.Now(),
		Duration:    res.Duration,
		MinDuration: minDur,
		Segments:    len(res.Segments),
		ModeTotals:  totals,
	}
	if err := writeYAML(filepath.Join(dir, "manifest.yaml"), m); err != nil {
		return "", err
	}
	return dir, nil
}

// Summary renders the per-segment report printed after a run.
func Summary(res *Result) []string {
	out := make([]string, 0, len(res.Segments))
	for _, s := range res.Segments {
		out = append(out, " - "+string(s.Mode)+": "+
			segments.FormatTimecode(s.Start)+" -> "+segments.FormatTimecode(s.End))
	}
	return out
}
