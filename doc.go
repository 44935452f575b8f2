// Package boukman finds the dominant supply path between two activities of a
// life-cycle inventory.
//
// 🚀 What is boukman?
//
//	A small, pure-Go toolkit that:
//		• Normalizes a technosphere flow matrix into a weighted adjacency matrix
//		• Finds the path of maximum multiplicative flow with Bellman-Ford or Johnson
//		• Projects index paths back onto supplier/consumer activities
//		• Answers many queries at once on a bounded worker pool
//
// Under the hood, everything is organized in subpackages:
//
//	matrix/               sparse CSR matrices, triplet builder & validators
//	normalize/            flow matrix → normalized adjacency (optional -ln weights)
//	shortest/             pluggable negative-weight shortest-path engine
//	pathfinder/           index- and entity-level path resolution
//	inventory/            entities, exchanges & technosphere construction
//	inventory/sqlstore/   SQLite-backed inventory
//	inventory/yamlfile/   YAML inventories, matrices & path output
//	batch/                concurrent path queries
//	config/               TOML configuration & logging setup
//	cmd/boukman/          command-line interface
//
// Quick ▶️:
//
//	adj, _ := normalize.Normalize(flow, normalize.WithLogTransform(false))
//	path, _ := pathfinder.FindPath(adj, 0, 3)
//	fmt.Println(path) // [0 1 2 3]
package boukman
