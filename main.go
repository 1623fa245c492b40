package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/cocr/scene-consolidator/config"
)

func main() {
	root := &cobra.Command{
		Use:           "scenes",
		Short:         "Consolidate face and speech presence into scene modes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newServeCmd(), newRunsCmd())

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// setup loads config and builds a logger at the configured level.
func setup() (*cfg.Root, *logrus.Logger, error) {
	conf, err := cfg.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(conf.Pipeline.LogLvl); err == nil {
		log.SetLevel(lvl)
	}
	return conf, log, nil
}
