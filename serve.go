package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cocr/scene-consolidator/orchestrator"
	"github.com/cocr/scene-consolidator/server"
	"github.com/cocr/scene-consolidator/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment overrides may live in a .env next to the binary.
			_ = godotenv.Load()

			conf, log, err := setup()
			if err != nil {
				return err
			}

			var st *store.Store
			if conf.Paths.DB != "" {
				st, err = store.Open(conf.Paths.DB)
				if err != nil {
					return err
				}
				defer st.Close()
			}

			pipe := orchestrator.NewPipeline(conf, log)
			if st != nil {
				pipe.AttachStore(st)
			}

			return server.New(conf, pipe, st, log).ListenAndServe()
		},
	}
}
