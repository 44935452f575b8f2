// Package inventory defines the entity side of path resolution: activities,
// the exchanges between them, and the Inventory collaborator that turns a
// set of demanded activities into a technosphere flow matrix.
//
// Implementations:
//
//   - Memory: fixed in-process lists, used by tests and YAML inventories.
//   - inventory/sqlstore: a SQLite-backed store.
//   - inventory/yamlfile: YAML decoding into a Memory inventory.
//
// Every implementation shares BuildTechnosphere, so matrix layout and index
// order depend only on the data, never on the backend.
package inventory
