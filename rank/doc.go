// Package rank reduces a set of basins to size rankings and summary scores.
//
//   - Rank:        sizes sorted descending.
//   - TopN:        the n largest sizes.
//   - TopNProduct: the product of the n largest sizes.
//   - Summarize:   count, total, extremes, mean, median and standard deviation.
//
// Asking for more basins than exist is a precondition violation and is
// reported as ErrInsufficientBasins rather than a partial product.
//
// Only sizes matter: results do not depend on the order in which basins
// were discovered.
package rank
