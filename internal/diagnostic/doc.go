// Package diagnostic provides structured errors, warnings and informational
// notes produced while validating and assembling a class map.
//
// Key capabilities:
//   - Unknown field reports with similarly named candidates
//   - Unsupported type reports
//   - Ambiguous path and duplicate alias warnings
//   - Duplicate column notes
package diagnostic
