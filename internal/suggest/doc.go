// Package suggest finds "did you mean" candidates for misspelled words:
// soft keywords in invocations, directive options and configuration values.
//
// Ranking first tries fuzzy subsequence matching (abbreviations such as
// "rf" for "ref") and falls back to edit distance (typos such as "bye"
// for "by").
package suggest
