// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/boukman/batch"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// queriesDoc is the input layout of the batch command.
//
//	queries:
//	  - {source: 0, target: 3}
type queriesDoc struct {
	Queries []batch.Query `yaml:"queries"`
}

// resultDoc is one output entry; Error replaces Path on failure.
type resultDoc struct {
	Source int     `yaml:"source"`
	Target int     `yaml:"target"`
	Path   []int   `yaml:"path,flow,omitempty"`
	Weight float64 `yaml:"weight,omitempty"`
	Error  string  `yaml:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		noLog   bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "batch [matrix.yaml] [queries.yaml]",
		Short: "Resolve many index paths over one flow matrix concurrently",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			adj, err := a.loadAdjacency(args[0], noLog)
			if err != nil {
				return err
			}
			queries, err := readQueries(args[1])
			if err != nil {
				return err
			}

			opts := []batch.Option{
				batch.WithAlgorithm(a.cfg.ShortestAlgorithm()),
				batch.WithLogger(a.log),
			}
			if workers == 0 {
				workers = a.cfg.Workers
			}
			if workers > 0 {
				opts = append(opts, batch.WithWorkers(workers))
			}
			results, err := batch.Run(cmd.Context(), adj, queries, opts...)
			if err != nil {
				return err
			}

			out := struct {
				Results []resultDoc `yaml:"results"`
			}{Results: make([]resultDoc, len(results))}
			for i, r := range results {
				out.Results[i] = resultDoc{Source: r.Source, Target: r.Target, Path: r.Path, Weight: r.Weight}
				if r.Err != nil {
					out.Results[i].Error = r.Err.Error()
				}
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(out); err != nil {
				return err
			}

			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Skip the -ln transform (overrides config)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Worker pool size (default: config, then GOMAXPROCS)")

	return cmd
}

func readQueries(path string) ([]batch.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc queriesDoc
	if err = yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return doc.Queries, nil
}
