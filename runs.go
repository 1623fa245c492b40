package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cocr/scene-consolidator/segments"
	"github.com/cocr/scene-consolidator/store"
)

func newRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent consolidation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, _, err := setup()
			if err != nil {
				return err
			}
			st, err := store.Open(conf.Paths.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.RecentRuns(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs recorded")
				return nil
			}
			for _, r := range runs {
				fmt.Printf("%s  %s  %s  %d segments  %s\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.ID[:8],
					segments.FormatTimecode(r.Duration),
					len(r.Segments),
					r.Video,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")
	return cmd
}
