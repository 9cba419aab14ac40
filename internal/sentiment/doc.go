// Package sentiment scores message text against a fixed bilingual keyword
// lexicon. Scores live in [-1.0, 1.0] and are computed once at message
// creation time; stored scores are never recomputed.
package sentiment
