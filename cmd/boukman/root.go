// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/katalvlaran/boukman/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfgPath   string
	algorithm string
	logLevel  string

	cfg    *config.Config
	log    *log.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{log: log.New()}

	rootCmd := &cobra.Command{
		Use:           "boukman",
		Short:         "Find the dominant supply path between two activities",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "Path to TOML configuration")
	rootCmd.PersistentFlags().StringVarP(&a.algorithm, "algorithm", "a", "", "Shortest-path algorithm: BF|bellman-ford|J|johnson (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(
		newPathCmd(a),
		newBatchCmd(a),
		newTraceCmd(a),
		newImportCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the configuration, applies flag overrides and configures logging.
func (a *app) setup() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.algorithm != "" {
		cfg.Algorithm = a.algorithm
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.closer = config.SetupLogger(a.log, cfg)
	a.log.WithFields(log.Fields{
		"config":    a.cfgPath,
		"algorithm": cfg.ShortestAlgorithm().String(),
	}).Debug("configuration loaded")

	return nil
}
