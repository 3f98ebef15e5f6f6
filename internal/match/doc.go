// Package match ranks field names by similarity to a misspelled one.
//
// Key functions:
//   - NormalizeIdent: folds case and strips separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest candidates for a "did you mean" hint
package match
