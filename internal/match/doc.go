// Package match provides fuzzy matching of field and option identifiers,
// used to attach "did you mean" suggestions to unknown-identifier
// diagnostics.
package match
