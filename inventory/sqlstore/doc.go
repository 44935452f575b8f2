// Package sqlstore is a SQLite-backed inventory.Inventory (pure-Go driver
// modernc.org/sqlite, no cgo).
//
// Schema: an entities table keyed by EntityID and an append-only exchanges
// table. Technosphere walks the supply chain upstream with a recursive CTE so
// only the reachable activities are loaded.
package sqlstore
