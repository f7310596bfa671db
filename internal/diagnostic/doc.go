// Package diagnostic provides structured, severity-tiered reporting for
// property validation.
//
// Key capabilities:
//   - Per-property error, warning and info entries with stable codes
//   - Aggregation across validation passes
//   - Collapse to a single error for fail-fast call sites
package diagnostic
