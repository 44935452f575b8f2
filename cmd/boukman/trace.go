// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/boukman/config"
	"github.com/katalvlaran/boukman/inventory"
	"github.com/katalvlaran/boukman/inventory/sqlstore"
	"github.com/katalvlaran/boukman/inventory/yamlfile"
	"github.com/katalvlaran/boukman/pathfinder"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTraceCmd(a *app) *cobra.Command {
	var driver, path string

	cmd := &cobra.Command{
		Use:   "trace [source-id] [target-id]",
		Short: "Resolve the supply path between two inventory activities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if driver != "" {
				a.cfg.Inventory.Driver = driver
			}
			if path != "" {
				a.cfg.Inventory.Path = path
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			inv, closer, err := openInventory(cmd.Context(), a.cfg.Inventory)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			r := pathfinder.New(inv, pathfinder.WithAlgorithm(a.cfg.ShortestAlgorithm()))
			if !r.Available() {
				a.log.Warn("no inventory configured; set [inventory] or pass --driver/--inventory")
			}
			source, target := inventory.EntityID(args[0]), inventory.EntityID(args[1])
			edges, err := r.PathAsEntities(cmd.Context(), source, target)
			if err != nil {
				return err
			}
			a.log.WithFields(log.Fields{
				"source": source,
				"target": target,
				"steps":  len(edges),
			}).Info("supply path resolved")

			return yamlfile.EncodeEdges(cmd.OutOrStdout(), edges)
		},
	}
	cmd.Flags().StringVar(&driver, "driver", "", "Inventory driver: sqlite|yaml (overrides config)")
	cmd.Flags().StringVarP(&path, "inventory", "i", "", "Inventory path (overrides config)")

	return cmd
}

// openInventory returns a nil Inventory when no driver is configured.
func openInventory(ctx context.Context, c config.Inventory) (inventory.Inventory, io.Closer, error) {
	switch c.Driver {
	case "":
		return nil, nil, nil
	case config.DriverYAML:
		mem, err := yamlfile.LoadInventory(c.Path)
		if err != nil {
			return nil, nil, err
		}
		return mem, nil, nil
	case config.DriverSQLite:
		s, err := sqlstore.Open(ctx, c.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown inventory.driver %q", config.ErrInvalidConfig, c.Driver)
	}
}
