// Package diagnostic provides structured warnings and errors for the
// pallet upgrade generator.
//
// Key capabilities:
//   - Structural errors found while loading a legacy storage definition
//   - Placeholder warnings for constructs the new syntax cannot express
//   - Suggestions for misspelled legacy identifiers
package diagnostic
