// Package batch resolves many index-level path queries over one normalized
// adjacency concurrently, on a bounded github.com/panjf2000/ants/v2 pool.
//
// Results come back in query order with per-query errors, so one failing
// pair never aborts the rest.
package batch
