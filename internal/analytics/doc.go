// Package analytics computes the read-side moderation and ranking signals:
// weighted engagement ranking of root messages and the shared-IP sockpuppet
// heuristic. Both are pure derivations over repository read models; they
// never mutate state and are safe to call concurrently.
package analytics
