// Package diagnostic provides structured findings from checking flat form
// records against a field schema.
//
// Key capabilities:
//   - Malformed composite key reports
//   - Unknown field/option reports with "did you mean" suggestions
//   - Stale entry warnings for fields no longer reachable by selection
package diagnostic
