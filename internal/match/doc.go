// Package match provides identifier normalization and fuzzy lookup used to
// recognize legacy spellings and to suggest corrections for misspelled ones.
//
// Normalization pipeline:
//  1. Tokenize CamelCase and separator-delimited words.
//  2. Case-fold to lower.
//  3. Join without separators (NormalizeIdent) or with '_' (SnakeCase).
//
// Suggestions rank candidates by normalized Levenshtein similarity.
package match
