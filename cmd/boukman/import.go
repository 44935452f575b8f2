// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/katalvlaran/boukman/inventory/sqlstore"
	"github.com/katalvlaran/boukman/inventory/yamlfile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [inventory.yaml] [output.db]",
		Short: "Import a YAML inventory into a SQLite database",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := yamlfile.DecodeInventory(f)
			if err != nil {
				return err
			}
			// Reject dangling exchanges before touching the database.
			if _, err = doc.Memory(); err != nil {
				return err
			}

			store, err := sqlstore.Open(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			defer store.Close()

			if err = store.Import(cmd.Context(), doc.Entities, doc.Exchanges); err != nil {
				return err
			}
			a.log.WithFields(log.Fields{
				"entities":  len(doc.Entities),
				"exchanges": len(doc.Exchanges),
				"db":        args[1],
			}).Info("inventory imported")

			return nil
		},
	}
}
