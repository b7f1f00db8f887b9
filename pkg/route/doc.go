// Package route implements the ordered route table and path matching.
//
// Patterns are literal segments plus :name captures; a capture matches
// exactly one non-empty segment. Matching is a linear scan in registration
// order and the first structural match wins - there is no specificity
// scoring, which keeps resolution predictable at the cost of requiring
// specific routes to be registered before general ones.
//
// Paths are canonicalized exactly once, before matching, so cosmetic
// differences like a trailing slash never cause a silent miss.
package route
