package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cocr/scene-consolidator/orchestrator"
	"github.com/cocr/scene-consolidator/store"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		faceJSON    string
		speechJSON  string
		minDuration float64
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "analyze <video>",
		Short: "Consolidate one video into a mode timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := setup()
			if err != nil {
				return err
			}

			pipe := orchestrator.NewPipeline(conf, log)
			if conf.Paths.DB != "" {
				st, err := store.Open(conf.Paths.DB)
				if err != nil {
					return err
				}
				defer st.Close()
				pipe.AttachStore(st)
			}

			res, err := pipe.Run(cmd.Context(), orchestrator.Request{
				Video:       args[0],
				FaceJSON:    faceJSON,
				SpeechJSON:  speechJSON,
				MinDuration: minDuration,
			})
			if err != nil {
				return err
			}

			if outPath != "" {
				if err := writePayload(outPath, res); err != nil {
					return err
				}
				fmt.Printf("Wrote consolidated segments to: %s\n", outPath)
			} else if res.OutDir != "" {
				fmt.Printf("Wrote consolidated segments to: %s\n", res.OutDir)
			}

			fmt.Println("Summary:")
			for _, line := range orchestrator.Summary(res) {
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&faceJSON, "face-json", "", "use existing face JSON instead of the detector service")
	cmd.Flags().StringVar(&speechJSON, "speech-json", "", "use existing speech JSON instead of the detector service")
	cmd.Flags().Float64Var(&minDuration, "min-duration", 0, "minimum segment duration in seconds (0 = configured default)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the output payload to this path")
	return cmd
}

func writePayload(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
