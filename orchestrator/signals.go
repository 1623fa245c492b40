package orchestrator

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cocr/scene-consolidator/clients"
)

// LoadSignalFile reads a precomputed detector JSON, the same document the
// detector services return ({video, duration, segments}).
func LoadSignalFile(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var resp clients.SignalResp
	if err := json.NewDecoder(f).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode signal %s: %w", path, err)
	}
	return fromResp(&resp), nil
}
