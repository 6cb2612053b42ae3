// Package textproc holds the text heuristics applied to summaries: filler
// removal, sentence splitting and bullet rendering.
//
// Each heuristic is its own type so a better tokenizer or sentence-boundary
// detector can replace it without touching alignment or chunking.
package textproc
