// Package basin discovers drainage basins on a heightmap.HeightMap by
// iterative 4-directional flood fill.
//
// What
//
//   - Explore grows one basin from a start cell (normally a low point): every
//     cell reachable by N/E/S/W steps without leaving the map or stepping onto
//     a ridge (elevation 9 by default).
//   - ExploreAll runs one independent exploration per start cell on a bounded
//     pool of goroutines and returns the basins in start order.
//   - Overlaps and Disjoint report basins that share cells, which happens when
//     ridges do not fully separate two low points.
//   - Labels paints a row-major basin label per cell for renderers.
//
// Frontier
//
//	The worklist is explicit; nothing recurses, so stack depth does not grow
//	with the map. Stack (LIFO, the default) and Queue (FIFO) visit cells in a
//	different order but always produce the same set, because membership is
//	decided by the visited set alone.
//
// Concurrency
//
//	A HeightMap is never mutated, so any number of explorations may share it.
//	Each exploration owns its frontier and visited set. Hooks passed with
//	WithOnVisit are called from worker goroutines in ExploreAll and must be
//	safe for concurrent use.
//
// Complexity (B = basin size)
//
//   - Explore: O(B) time and memory; each member is dequeued once and relaxes
//     at most 4 edges.
//   - ExploreAll: O(ΣB) total work spread over the worker pool.
//   - Overlaps: O(ΣB) expected time.
package basin
