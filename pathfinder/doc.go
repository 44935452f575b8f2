// Package pathfinder finds the dominant supply path between two activities.
//
// At index level, FindPath runs a negative-weight tolerant search over a
// normalized adjacency matrix (see package normalize). At entity level, a
// Resolver fetches the technosphere from an inventory, normalizes it with the
// log transform and projects the index path back onto supplier/consumer
// edges. Without an inventory the entity level is unavailable and reports
// ErrDependencyUnavailable.
//
// Example:
//
//	path, err := pathfinder.FindPath(adj, 0, 3, pathfinder.WithAlgorithm(shortest.Johnson))
//
//	r := pathfinder.New(inv)
//	edges, err := r.PathAsEntities(ctx, "bread", "diesel")
package pathfinder
