// Package tree reconstructs the nested field tree of a form submission
// from its flattened composite-key mapping.
//
// Build walks every entry of a flat.Record in insertion order, decodes its
// composite key into an ancestor chain, and extends an accumulator of root
// nodes, merging shared prefixes into shared subtrees. The conversion is
// one-shot, deterministic, and stateless: each call allocates its own
// accumulator and nothing persists between calls.
package tree
