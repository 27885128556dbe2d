// Package aggregation provides indexes that maintain a running aggregate
// over the indexed values instead of a lookup structure: count, sum,
// mean, standard deviation and boolean all/any. Each keeps O(1) state
// and answers in O(1), with no rescan on mutation.
//
// Aggregates compose like any other index: premap onto a numeric field,
// filter to a subset, or group to get per-group aggregates.
package aggregation
