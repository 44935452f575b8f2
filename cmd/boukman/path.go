// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/boukman/inventory/yamlfile"
	"github.com/katalvlaran/boukman/normalize"
	"github.com/katalvlaran/boukman/pathfinder"
	"github.com/katalvlaran/boukman/shortest"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	var noLog bool

	cmd := &cobra.Command{
		Use:   "path [matrix.yaml] [source] [target]",
		Short: "Resolve the index path between two activities of a flow matrix",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("source: %w", err)
			}
			target, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("target: %w", err)
			}

			adj, err := a.loadAdjacency(args[0], noLog)
			if err != nil {
				return err
			}
			path, err := pathfinder.FindPath(adj, source, target,
				pathfinder.WithAlgorithm(a.cfg.ShortestAlgorithm()))
			if err != nil {
				return err
			}
			weight, err := shortest.PathWeight(adj.Matrix(), path)
			if err != nil {
				return err
			}
			a.log.WithFields(log.Fields{"path": path, "weight": weight}).Info("path resolved")

			return yamlfile.EncodePath(cmd.OutOrStdout(), path)
		},
	}
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Skip the -ln transform (overrides config)")

	return cmd
}

// loadAdjacency decodes and normalizes the matrix file at path.
func (a *app) loadAdjacency(path string, noLog bool) (*normalize.Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	flow, err := yamlfile.DecodeMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logT := a.cfg.LogTransformEnabled() && !noLog
	adj, err := normalize.Normalize(flow, normalize.WithLogTransform(logT))
	if err != nil {
		return nil, err
	}
	a.log.WithFields(log.Fields{
		"size":          adj.Size(),
		"nnz":           adj.Matrix().NNZ(),
		"log_transform": logT,
	}).Debug("matrix normalized")

	return adj, nil
}
