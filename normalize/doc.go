// Package normalize turns a raw flow matrix into a normalized adjacency
// matrix on which a negative-weight shortest-path search finds the path of
// maximum multiplicative flow.
//
// Conventions:
//
//   - Input: flow[i][j] is the amount of activity i's output consumed by
//     activity j; flow[i][i] is activity i's own production amount (non-zero).
//   - Output: edge j→i (consumer → supplier) with weight
//     -flow[i][j]/flow[j][j]; the diagonal is exactly 1.
//   - Optional log transform (default on): every stored v becomes -ln(v).
//
// Negating the coefficients turns "longest multiplicative path" into
// "shortest path", hence the weights are negative by construction and only
// negative-weight tolerant algorithms (Bellman-Ford, Johnson) apply.
//
// Example:
//
//	adj, err := normalize.Normalize(flow)                                // log weights
//	raw, err := normalize.Normalize(flow, normalize.WithLogTransform(false)) // linear weights
package normalize
